package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
)

// NotificationPayload é o registro tipado extraído do TRX_INFO de uma
// linha. Vive apenas durante o ciclo de despacho.
type NotificationPayload interface {
	Recipient() string
	TemplateData() map[string]string
}

// PayloadMetadata liga um TrxCode ao seu schema de payload e às regras
// de cópia do e-mail.
type PayloadMetadata struct {
	Type      reflect.Type
	CopyStore bool // envia CC para o endereço da loja
}

// NewPayloadRegistry monta o registro de schemas por TrxCode.
func NewPayloadRegistry() map[TrxCode]PayloadMetadata {
	return map[TrxCode]PayloadMetadata{
		ReceiptIssuedCode:   {Type: reflect.TypeOf(ReceiptIssued{})},
		OrderConfirmedCode:  {Type: reflect.TypeOf(OrderNotice{}), CopyStore: true},
		OrderShippedCode:    {Type: reflect.TypeOf(OrderNotice{})},
		PickupReadyCode:     {Type: reflect.TypeOf(OrderNotice{})},
		PaymentDeclinedCode: {Type: reflect.TypeOf(OrderNotice{})},
		PasswordResetCode:   {Type: reflect.TypeOf(PasswordReset{})},
	}
}

// Decode transforma o payload opaco de uma linha no registro tipado do
// seu TrxCode. Ou devolve um registro completo ou falha; não existe
// decodificação parcial. Campos desconhecidos são rejeitados.
func Decode(registry map[TrxCode]PayloadMetadata, code TrxCode, raw json.RawMessage) (NotificationPayload, error) {
	meta, ok := registry[code]
	if !ok {
		return nil, &MalformedPayloadError{Code: code, Err: errors.New("unknown trx code")}
	}

	payload := reflect.New(meta.Type).Interface()
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(payload); err != nil {
		return nil, &MalformedPayloadError{Code: code, Err: err}
	}

	record, ok := payload.(NotificationPayload)
	if !ok {
		return nil, &MalformedPayloadError{Code: code, Err: errors.New("payload type not registered as notification")}
	}
	// Mesma validação mínima de endereço dos jobs originais.
	if r := record.Recipient(); !strings.Contains(r, "@") || !strings.Contains(r, ".") {
		return nil, &MalformedPayloadError{Code: code, Err: errors.New("recipient email missing or invalid")}
	}
	return record, nil
}

// ReceiptIssued é o payload de nota fiscal emitida, gravado pelo seeder.
type ReceiptIssued struct {
	Email       string `json:"recipient"`
	DisplayName string `json:"displayName"`
	ReceiptNo   string `json:"receiptNo"`
	NfeKey      string `json:"nfeKey"`
	OrderID     string `json:"orderId,omitempty"`
}

func (p *ReceiptIssued) Recipient() string { return p.Email }

func (p *ReceiptIssued) TemplateData() map[string]string {
	return map[string]string{"nome": p.DisplayName, "nf": p.ReceiptNo, "key": p.NfeKey}
}

// OrderNotice cobre os avisos de pedido: confirmado, enviado, pronto
// para retirada e cartão recusado.
type OrderNotice struct {
	Email       string `json:"recipient"`
	DisplayName string `json:"displayName"`
	OrderID     string `json:"orderId"`
}

func (p *OrderNotice) Recipient() string { return p.Email }

func (p *OrderNotice) TemplateData() map[string]string {
	return map[string]string{"nome": p.DisplayName, "ped": p.OrderID}
}

// PasswordReset carrega a senha temporária em campo próprio, não mais
// disfarçada no nome do cliente como nos jobs antigos.
type PasswordReset struct {
	Email        string `json:"recipient"`
	TempPassword string `json:"tempPassword"`
}

func (p *PasswordReset) Recipient() string { return p.Email }

func (p *PasswordReset) TemplateData() map[string]string {
	return map[string]string{"senha": p.TempPassword}
}
