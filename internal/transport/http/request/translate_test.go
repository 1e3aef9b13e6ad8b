package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-backend/internal/domain"
)

func TestRegisterRequestValidate(t *testing.T) {
	ok := RegisterRequest{FullName: "Ada", Email: "ada@example.com", Password: "pw"}
	assert.NoError(t, ok.Validate())

	long := ok
	long.Password = strings.Repeat("x", 73)
	var ve *domain.ValidationError
	require.ErrorAs(t, long.Validate(), &ve)
	assert.Equal(t, "password", ve.Field)

	blank := ok
	blank.FullName = " \t"
	require.ErrorAs(t, blank.Validate(), &ve)
	assert.Equal(t, "fullName", ve.Field)
}

func TestUpdateTodoRequestValidate(t *testing.T) {
	assert.NoError(t, (&UpdateTodoRequest{ID: "1"}).Validate())
	empty := ""
	assert.Error(t, (&UpdateTodoRequest{ID: "1", Text: &empty}).Validate())
}

func TestListTodosQueryValues(t *testing.T) {
	q := ListTodosQuery{Page: "2", Limit: "abc"}
	page, limit := q.Values(1, 10)
	assert.Equal(t, 2, page)
	assert.Equal(t, 10, limit)

	q = ListTodosQuery{Page: "-1", Limit: " 25 "}
	page, limit = q.Values(1, 10)
	assert.Equal(t, 1, page)
	assert.Equal(t, 25, limit)
}

func TestTranslatePassesThroughValidationError(t *testing.T) {
	in := domain.NewValidationError("text", "nope")
	assert.Same(t, in, Translate(in))
	assert.Nil(t, Translate(nil))

	var ve *domain.ValidationError
	require.ErrorAs(t, Translate(errors.New("weird")), &ve)
	assert.Equal(t, "weird", ve.Message)
}

func TestJSONName(t *testing.T) {
	assert.Equal(t, "fullName", jsonName("FullName"))
	assert.Equal(t, "id", jsonName("ID"))
	assert.Equal(t, "text", jsonName("Text"))
}
