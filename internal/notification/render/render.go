// Package render resolve o template de cada TrxCode e produz o corpo do
// e-mail. A saída é determinística e todos os campos vindos do payload
// passam pelo escaping de html/template (os jobs antigos interpolavam
// strings cruas direto no HTML).
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
)

// MailTemplate declara o assunto e os placeholders obrigatórios de um
// template. Placeholder obrigatório sem valor é erro, nunca vazio.
type MailTemplate struct {
	Subject  string
	Required []string
	tmpl     *template.Template
}

var catalog = map[string]*MailTemplate{}

func register(id, subject string, required []string, body string) {
	catalog[id] = &MailTemplate{
		Subject:  subject,
		Required: required,
		tmpl:     template.Must(template.New(id).Option("missingkey=error").Parse(body)),
	}
}

// Subject retorna o assunto fixo do template, ou vazio se desconhecido.
func Subject(id string) string {
	if t, ok := catalog[id]; ok {
		return t.Subject
	}
	return ""
}

// Render produz o corpo HTML do template indicado. Função pura: mesma
// entrada, saída byte a byte idêntica.
func Render(id string, data map[string]string) (string, error) {
	t, ok := catalog[id]
	if !ok {
		return "", fmt.Errorf("unknown template %q", id)
	}
	for _, field := range t.Required {
		if data[field] == "" {
			return "", &domain.TemplateBindingError{TemplateID: id, Field: field}
		}
	}
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template %s: %w", id, err)
	}
	return buf.String(), nil
}
