package postgres

import (
	"reflect"
	"strings"
	"testing"

	"rainerio-service/internal/domain/seller"
	"rainerio-service/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The column lists and the db struct tags are the two halves of the field
// mapping; a model field missing from its column list would be silently
// dropped on every write.

func TestVehicleColumnsCoverEveryField(t *testing.T) {
	cols := columnSet(vehicleColumns)
	tags := dbTags(t, vehicle.Vehicle{})

	assert.Len(t, cols, len(tags))
	for _, tag := range tags {
		assert.Contains(t, cols, tag)
	}
}

func TestSellerColumnsCoverEveryField(t *testing.T) {
	cols := columnSet(sellerColumns)
	tags := dbTags(t, seller.Seller{})

	assert.Len(t, cols, len(tags))
	for _, tag := range tags {
		assert.Contains(t, cols, tag)
	}
}

func columnSet(list string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, col := range strings.Split(list, ",") {
		out[strings.TrimSpace(col)] = struct{}{}
	}
	return out
}

func dbTags(t *testing.T, model interface{}) []string {
	t.Helper()

	typ := reflect.TypeOf(model)
	tags := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("db")
		require.NotEmpty(t, tag, "field %s has no db tag", field.Name)
		tags = append(tags, tag)
	}
	return tags
}
