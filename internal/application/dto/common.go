package dto

// Envelope es el sobre uniforme de todas las respuestas de la API:
// {data|id, error, message}. En éxito error es null; en fallo error es true
// y message describe la causa. Los clientes dependen de los nulls, de ahí
// los punteros.
type Envelope struct {
	Data    any     `json:"data,omitempty"`
	ID      string  `json:"id,omitempty"`
	Error   *bool   `json:"error"`
	Message *string `json:"message"`
}

// OK arma el sobre de una lectura exitosa (error y message en null).
func OK(data any) Envelope {
	return Envelope{Data: data}
}

// Created arma el sobre de una mutación exitosa que devuelve un ID.
func Created(id, message string) Envelope {
	return Envelope{ID: id, Message: &message}
}

// Done arma el sobre de una mutación exitosa sin ID (update, delete).
func Done(message string) Envelope {
	return Envelope{Message: &message}
}

// Fail arma el sobre de un fallo de dominio o validación.
func Fail(message string) Envelope {
	t := true
	return Envelope{Error: &t, Message: &message}
}
