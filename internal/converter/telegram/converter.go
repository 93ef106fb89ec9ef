package converter

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/you-humble/frio-catalog/internal/converter/summary"
	"github.com/you-humble/frio-catalog/internal/model"
)

var (
	//go:embed templates/order_created.tmpl
	orderCreatedFS       embed.FS
	orderCreatedTemplate = template.Must(
		template.New("order_created.tmpl").
			Funcs(template.FuncMap{
				"money": summary.FormatMoney,
				"md":    escapeMarkdown,
			}).
			ParseFS(orderCreatedFS, "templates/order_created.tmpl"),
	)
)

var markdownReplacer = strings.NewReplacer(
	"_", `\_`,
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
)

func BuildOrderCreated(event model.OrderCreated) (string, error) {
	var buf bytes.Buffer
	if err := orderCreatedTemplate.Execute(&buf, event); err != nil {
		return "", err
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// escapeMarkdown protects customer supplied text in Telegram Markdown (v1).
func escapeMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}
