package batchimport

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBillRows(t *testing.T) {
	input := "subscriber_id,month,total,details\n" +
		"1,2024-01,100.00,\"[{\"\"type\"\":\"\"call\"\",\"\"cost\"\":\"\"1.25\"\",\"\"duration\"\":30}]\"\n" +
		"2,2024-02,50.50,\n"

	rows, err := ParseBillRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, uint(1), rows[0].SubscriberID)
	assert.Equal(t, "2024-01", rows[0].Month.Format("2006-01"))
	assert.True(t, rows[0].Total.Equal(decimal.RequireFromString("100.00")))
	require.NotNil(t, rows[0].Details)
	assert.JSONEq(t, `[{"type":"call","cost":"1.25","duration":30}]`, *rows[0].Details)

	assert.Equal(t, uint(2), rows[1].SubscriberID)
	assert.Nil(t, rows[1].Details)
}

func TestParseBillRows_SkipsMalformedRows(t *testing.T) {
	input := "subscriber_id,month,total,details\n" +
		"abc,2024-01,100.00,\n" + // bad subscriber id
		"1,January,100.00,\n" + // bad month
		"1,2024-01,lots,\n" + // bad total
		"1,2024-01,-5.00,\n" + // negative total
		"2,2024-03,75.00,\n" // good

	rows, err := ParseBillRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(2), rows[0].SubscriberID)
	assert.Equal(t, "2024-03", rows[0].Month.Format("2006-01"))
}

func TestParseBillRows_InvalidDetailsDropped(t *testing.T) {
	input := "1,2024-01,100.00,this is not json\n"

	rows, err := ParseBillRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Details)
}

func TestParseBillRows_NoValidRows(t *testing.T) {
	_, err := ParseBillRows(strings.NewReader("subscriber_id,month,total\n"))
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = ParseBillRows(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestParseBillRows_RowWithoutDetailsColumn(t *testing.T) {
	rows, err := ParseBillRows(strings.NewReader("3,2024-04,12.00\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(3), rows[0].SubscriberID)
	assert.Nil(t, rows[0].Details)
}
