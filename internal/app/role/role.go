package role

import (
	"errors"
	"fmt"
	"strings"
)

type Role int

const (
	Buyer   Role = iota // 0
	Manager             // 1
	Admin               // 2
)

var ErrForbidden = errors.New("forbidden: role is not allowed to manage the catalog")

func (r Role) String() string {
	switch r {
	case Buyer:
		return "buyer"
	case Manager:
		return "manager"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// Parse разбирает имя роли: buyer, manager или admin
func Parse(name string) (Role, error) {
	for _, r := range []Role{Buyer, Manager, Admin} {
		if strings.EqualFold(strings.TrimSpace(name), r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}

// Valid сообщает, что значение роли входит в известный набор
func (r Role) Valid() bool {
	return r >= Buyer && r <= Admin
}

// CanManageCatalog - изменять цены и модификаторы может только администратор
func (r Role) CanManageCatalog() bool {
	return r == Admin
}

// Actor - кто выполняет операцию. Передается явно в защищенные операции
type Actor struct {
	UserID uint
	Role   Role
}

// Operator - актор для CLI, запускаемого оператором на сервере
func Operator() Actor {
	return Actor{UserID: 0, Role: Admin}
}
