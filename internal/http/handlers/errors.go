// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and accompany every error envelope so
// clients can branch without parsing the (pt-BR) human message. The status
// is chosen from the apperr kind in failErr; the code mirrors it.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "conflict",
//	  "error": "Não é possível deletar a empresa pois possui projetos relacionados"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodePayloadTooLarge  = "payload_too_large"
)

// User-facing messages owned by the transport layer.
const (
	msgInternal         = "Erro interno do servidor"
	msgInvalidJSON      = "JSON inválido no corpo da requisição"
	msgBodyNotObject    = "O corpo da requisição deve ser um objeto"
	msgBodyUnreadable   = "Não foi possível ler o corpo da requisição"
	msgBodyTooLarge     = "Corpo da requisição excede o tamanho máximo permitido"
	msgRouteNotFound    = "Rota não encontrada"
	msgMethodNotAllowed = "Método não permitido"
)
