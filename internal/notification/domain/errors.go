package domain

import "fmt"

// ConnectivityError indica banco ou transporte inacessível. É fatal para a
// execução corrente; a recuperação é o próximo agendamento do job.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("connectivity failure during %s: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// MalformedPayloadError indica um payload que não fecha com o schema do
// seu TrxCode. Erro por linha: a linha é pulada e fica PENDING.
type MalformedPayloadError struct {
	Code TrxCode
	Err  error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload for %s: %v", e.Code, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// TemplateBindingError indica um placeholder obrigatório sem valor.
// Nunca substituímos silenciosamente por vazio.
type TemplateBindingError struct {
	TemplateID string
	Field      string
}

func (e *TemplateBindingError) Error() string {
	return fmt.Sprintf("template %s: required field %q is missing or empty", e.TemplateID, e.Field)
}

// TransportRejectedError indica recusa terminal do transporte: todas as
// credenciais candidatas esgotadas ou um status não recuperável.
type TransportRejectedError struct {
	Status int
	Reason string
}

func (e *TransportRejectedError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport rejected the request (status %d): %s", e.Status, e.Reason)
	}
	return "transport rejected the request: " + e.Reason
}
