// Generates the ent client for the insolvency schemas into gen/ent.
// Run from the repository root: go run ./db/ent
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
