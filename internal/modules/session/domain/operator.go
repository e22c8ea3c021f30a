package domain

import (
	"errors"

	"github.com/google/uuid"
)

// RoleEncargado is the only role the dashboard knows: the lab operator.
const RoleEncargado = "encargado"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLoginDisabled      = errors.New("operator login is not configured")
)

type Operator struct {
	ID      uuid.UUID `json:"id"`
	Usuario string    `json:"usuario"`
	Role    string    `json:"role"`
}

var operatorNamespace = uuid.MustParse("6f1c1e8a-3b8e-4b6e-9d3e-6c0f7d1f2a10")

// OperatorID derives a stable id from the username so tokens stay valid across
// restarts.
func OperatorID(username string) uuid.UUID {
	return uuid.NewSHA1(operatorNamespace, []byte(username))
}

func NewOperator(username string) Operator {
	return Operator{ID: OperatorID(username), Usuario: username, Role: RoleEncargado}
}
