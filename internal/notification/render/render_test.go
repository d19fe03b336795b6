package render

import (
	"strings"
	"testing"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_IsDeterministic(t *testing.T) {
	data := map[string]string{"nome": "Maria", "ped": "1029"}

	first, err := Render(string(domain.OrderShippedCode), data)
	require.NoError(t, err)
	second, err := Render(string(domain.OrderShippedCode), data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Maria")
	assert.Contains(t, first, "1029")
}

func TestRender_MissingRequiredFieldFails(t *testing.T) {
	_, err := Render(string(domain.OrderShippedCode), map[string]string{"ped": "1029"})

	var bindErr *domain.TemplateBindingError
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "nome", bindErr.Field)
	assert.Equal(t, string(domain.OrderShippedCode), bindErr.TemplateID)
}

func TestRender_EscapesUntrustedFields(t *testing.T) {
	body, err := Render(string(domain.PickupReadyCode), map[string]string{
		"nome": `<script>alert(1)</script>`,
		"ped":  "42",
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRender_UnknownTemplateFails(t *testing.T) {
	_, err := Render("no-such-template", nil)
	require.Error(t, err)
}

func TestRender_ReceiptIssuedBindsInvoiceFields(t *testing.T) {
	body, err := Render(string(domain.ReceiptIssuedCode), map[string]string{
		"nome": "José",
		"nf":   "8812",
		"key":  "35200114200166000187550010000000046550000046",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "8812")
	assert.Contains(t, body, "35200114200166000187550010000000046550000046")
}

func TestSubject_PerTemplate(t *testing.T) {
	assert.Equal(t, "Nota Fiscal", Subject(string(domain.ReceiptIssuedCode)))
	assert.Equal(t, "Pedido Enviado!", Subject(string(domain.OrderShippedCode)))
	assert.Equal(t, "Reset de Senha", Subject(string(domain.PasswordResetCode)))
	assert.Equal(t, "", Subject("no-such-template"))
}

func TestRender_WelcomeHasNoPlaceholders(t *testing.T) {
	body, err := Render(WelcomeTemplateID, nil)

	require.NoError(t, err)
	assert.Contains(t, body, "Equipe Aquanimal")
	assert.False(t, strings.Contains(body, "{{"))
}
