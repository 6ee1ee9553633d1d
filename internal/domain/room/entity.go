package room

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("room name must not be empty")

// Room is immutable once created; bookings reference it by id only.
type Room struct {
	id   int64
	name string
}

func NewRoom(name string) (*Room, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	return &Room{name: trimmed}, nil
}

func ReconstructRoom(id int64, name string) *Room {
	return &Room{
		id:   id,
		name: name,
	}
}

func (r *Room) ID() int64    { return r.id }
func (r *Room) Name() string { return r.name }
