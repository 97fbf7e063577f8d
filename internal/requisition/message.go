package requisition

import (
	"fmt"
	"strings"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

// ComposeMessage renders the human-readable requisition summary sent to the
// warehouse channel. The format is fixed; downstream tooling parses it.
func ComposeMessage(requesterName, protocol string, items []model.CartItem) string {
	var b strings.Builder

	b.WriteString("*📋 NOVA REQUISIÇÃO ATIVA*\n")
	fmt.Fprintf(&b, "👤 *SOLICITANTE:* %s\n", requesterName)
	fmt.Fprintf(&b, "🆔 *PROTOCOLO:* #%s\n", protocol)
	b.WriteString("----------------------------\n\n")

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("🔹 %s: *%d %s*",
			item.Product.Name, item.Quantity, strings.ToUpper(item.Product.Unit)))
	}
	b.WriteString(strings.Join(lines, "\n"))

	b.WriteString("\n\n_Enviado via App Galinheiro_")
	return b.String()
}
