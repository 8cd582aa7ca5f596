package query

import (
	"strings"
	"testing"

	"github.com/vegasq/csvtab/reader"
)

// phonesCSV is the ten row sample used across the query tests
const phonesCSV = `name,brand,price,rating
iphone 15 pro,apple,999,4.9
galaxy s23 ultra,samsung,1199,4.8
redmi note 12,xiaomi,199,4.6
iphone 14,apple,799,4.7
galaxy a54,samsung,349,4.2
poco x5 pro,xiaomi,299,4.4
iphone se,apple,429,4.1
galaxy z flip 5,samsung,999,4.6
redmi 10c,xiaomi,149,4.1
iphone 13 mini,apple,599,4.5
`

// loadPhones parses phonesCSV into a dataset
func loadPhones(t *testing.T) *reader.Dataset {
	t.Helper()
	return loadCSV(t, phonesCSV)
}

// loadCSV parses inline CSV text into a dataset
func loadCSV(t *testing.T, text string) *reader.Dataset {
	t.Helper()
	ds, err := reader.ReadCSV(strings.NewReader(text), reader.Options{})
	if err != nil {
		t.Fatalf("failed to parse test data: %v", err)
	}
	return ds
}

// column extracts one column from ds in record order
func column(ds *reader.Dataset, name string) []string {
	return ds.Values(name)
}
