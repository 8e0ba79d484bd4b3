package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("staff").
		Where(squirrel.Eq{"vendor_id": "v1", "is_active": true}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name FROM staff WHERE is_active = $1 AND vendor_id = $2", query)
	assert.Equal(t, []interface{}{true, "v1"}, args)
}

func TestDelete_DollarPlaceholders(t *testing.T) {
	query, args, err := Delete("vendor_slots_config").Where(squirrel.Eq{"vendor_id": "v1"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM vendor_slots_config WHERE vendor_id = $1", query)
	assert.Equal(t, []interface{}{"v1"}, args)
}
