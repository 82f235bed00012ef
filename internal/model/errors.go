package model

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marca violaciones de precondición detectadas al momento
// de la llamada (precio negativo, cantidad <= 0, id vacío, etc.).
var ErrInvalidArgument = errors.New("argumento inválido")

// ErrNotFound se usa cuando un id no resuelve en el catálogo o en el carrito.
// Es una variante de ErrInvalidArgument: errors.Is responde true para ambos.
var ErrNotFound = fmt.Errorf("%w: no encontrado", ErrInvalidArgument)
