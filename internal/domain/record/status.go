// Package record holds the soft-delete lifecycle shared by every persisted entity.
package record

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusDeleted:
		return true
	default:
		return false
	}
}

func (s Status) IsDeleted() bool { return s == StatusDeleted }

func (s Status) String() string { return string(s) }
