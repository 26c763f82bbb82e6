package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeletedResponse confirma un borrado devolviendo el id eliminado.
type DeletedResponse struct {
	ID string `json:"id"`
}
