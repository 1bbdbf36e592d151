package database

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm/schema"
)

// RenderER writes a Mermaid erDiagram of the given models. Relations are
// read from the gorm schema, so the diagram follows the struct tags.
func RenderER(w io.Writer, entities ...interface{}) error {
	cache := &sync.Map{}
	namer := schema.NamingStrategy{}

	schemas := make([]*schema.Schema, 0, len(entities))
	for _, entity := range entities {
		s, err := schema.Parse(entity, cache, namer)
		if err != nil {
			return fmt.Errorf("failed to parse %T: %w", entity, err)
		}
		schemas = append(schemas, s)
	}

	foreignKeys := map[string]map[string]bool{}
	edges := map[string]string{}

	for _, s := range schemas {
		for _, rel := range relationsOf(s) {
			for _, ref := range rel.References {
				if ref.ForeignKey == nil || ref.ForeignKey.Schema == nil {
					continue
				}
				table := ref.ForeignKey.Schema.Table
				if foreignKeys[table] == nil {
					foreignKeys[table] = map[string]bool{}
				}
				foreignKeys[table][ref.ForeignKey.DBName] = true
			}

			switch rel.Type {
			case schema.HasOne, schema.HasMany:
				addOneToMany(edges, s.Table, rel.FieldSchema.Table, rel)
			case schema.BelongsTo:
				addOneToMany(edges, rel.FieldSchema.Table, s.Table, rel)
			case schema.Many2Many:
				if rel.JoinTable == nil {
					continue
				}
				left, right := s.Table, rel.FieldSchema.Table
				if right < left {
					left, right = right, left
				}
				edges["m2m|"+rel.JoinTable.Table] = fmt.Sprintf("    %s }o--o{ %s : %q\n", left, right, rel.JoinTable.Table)
			}
		}
	}

	var b strings.Builder
	b.WriteString("erDiagram\n")
	for _, s := range schemas {
		writeEntity(&b, s, foreignKeys[s.Table])
	}

	keys := make([]string, 0, len(edges))
	for k := range edges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(edges[k])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func relationsOf(s *schema.Schema) []*schema.Relationship {
	names := make([]string, 0, len(s.Relationships.Relations))
	for name := range s.Relationships.Relations {
		names = append(names, name)
	}
	sort.Strings(names)

	rels := make([]*schema.Relationship, 0, len(names))
	for _, name := range names {
		rels = append(rels, s.Relationships.Relations[name])
	}
	return rels
}

// addOneToMany records parent ||--o{ child once, whichever side declared it
func addOneToMany(edges map[string]string, parent, child string, rel *schema.Relationship) {
	label := child
	if len(rel.References) > 0 && rel.References[0].ForeignKey != nil {
		label = rel.References[0].ForeignKey.DBName
	}
	key := "1n|" + parent + "|" + child + "|" + label
	edges[key] = fmt.Sprintf("    %s ||--o{ %s : %q\n", parent, child, label)
}

func writeEntity(b *strings.Builder, s *schema.Schema, foreignKeys map[string]bool) {
	fmt.Fprintf(b, "    %s {\n", s.Table)
	for _, dbName := range s.DBNames {
		field := s.FieldsByDBName[dbName]
		if field == nil {
			continue
		}

		var keys []string
		if field.PrimaryKey {
			keys = append(keys, "PK")
		}
		if foreignKeys[dbName] {
			keys = append(keys, "FK")
		}
		if _, unique := field.TagSettings["UNIQUEINDEX"]; unique || field.Unique {
			keys = append(keys, "UK")
		}

		line := fmt.Sprintf("        %s %s", columnType(field), dbName)
		if len(keys) > 0 {
			line += " " + strings.Join(keys, ", ")
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("    }\n")
}

// columnType drops size arguments, which Mermaid does not accept
func columnType(field *schema.Field) string {
	t := string(field.DataType)
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	if t == "" {
		t = "unknown"
	}
	return t
}
