//go:build mage

package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/SamJ33/Research-on-ASD/internal/catalog"
	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// dataPath returns the dataset used by the catalog targets: $DATA or the
// default dataset file.
func dataPath() string {
	if p := os.Getenv("DATA"); p != "" {
		return p
	}
	return types.DefaultDataPath
}

// Index writes the dataset ($DATA) to the SQLite index catalog.db.
func Index() error {
	c, err := catalog.Load(dataPath())
	if err != nil {
		return err
	}
	if err := catalog.WriteIndex(context.Background(), "catalog.db", c.Records()); err != nil {
		return err
	}
	fmt.Printf("[catalog] Indexed %d studies into catalog.db\n", c.Len())
	return nil
}

// Stats prints the number of studies per category and per year of the
// dataset ($DATA).
func Stats() error {
	c, err := catalog.Load(dataPath())
	if err != nil {
		return err
	}
	fmt.Printf("[catalog] %s\n", catalog.Count(c.Len()))

	for _, f := range []types.Field{types.FieldCategory, types.FieldYear} {
		counts := make(map[string]int)
		for _, r := range c.Records() {
			v, _ := r.Value(string(f))
			if v == "" {
				v = "(none)"
			}
			counts[v]++
		}

		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Printf("\nBy %s:\n", f)
		for _, k := range keys {
			fmt.Printf("  %-40s %d\n", k, counts[k])
		}
	}
	return nil
}
