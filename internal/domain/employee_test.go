package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployee_String(t *testing.T) {
	e := Employee{ID: 1, Name: "Ana", Department: "Eng"}
	assert.Equal(t, "1 - Ana (Eng)", e.String())
	assert.Equal(t, "12 - Bo (Customer Success)", Employee{ID: 12, Name: "Bo", Department: "Customer Success"}.String())
}
