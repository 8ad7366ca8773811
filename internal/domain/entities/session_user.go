package entities

// SessionUser é o usuário associado a um token emitido pelo login simulado.
// Não corresponde a nenhum registro persistido.
type SessionUser struct {
	ID    int
	Name  string
	Email any // valor de "email" como o cliente enviou; nil se ausente ou null
	Role  Role
}
