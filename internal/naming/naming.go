// Package naming derives the file, symbol and include-guard names used for a
// generated yli::ontology class.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Namespace qualifies every generated class and its parent.
const Namespace = "yli::ontology"

// ClassSpec is the caller's input. Neither name is checked against C++
// identifier syntax.
type ClassSpec struct {
	ClassName       string
	ParentClassName string
}

// NameForms holds every name derived from a ClassSpec.
type NameForms struct {
	ClassName       string `yaml:"class_name"`
	ParentClassName string `yaml:"parent_class_name"`
	Namespace       string `yaml:"namespace"`

	SnakeClassName       string `yaml:"snake_class_name"`
	SnakeParentClassName string `yaml:"snake_parent_class_name"`
	IncludeGuard         string `yaml:"include_guard"`

	HeaderFile       string `yaml:"header_file"`
	SourceFile       string `yaml:"source_file"`
	StructFile       string `yaml:"struct_file"`
	ParentHeaderFile string `yaml:"parent_header_file"`

	QualifiedClassName       string `yaml:"qualified_class_name"`
	QualifiedParentClassName string `yaml:"qualified_parent_class_name"`
	StructType               string `yaml:"struct_type"`
	StructName               string `yaml:"struct_name"`
	ChildModuleVariable      string `yaml:"child_module_variable"`
}

// Derive computes all name forms for spec.
func Derive(spec ClassSpec) NameForms {
	snake := SnakeCase(spec.ClassName)
	parentSnake := SnakeCase(spec.ParentClassName)

	return NameForms{
		ClassName:       spec.ClassName,
		ParentClassName: spec.ParentClassName,
		Namespace:       Namespace,

		SnakeClassName:       snake,
		SnakeParentClassName: parentSnake,
		IncludeGuard:         IncludeGuard(spec.ClassName),

		HeaderFile:       snake + ".hpp",
		SourceFile:       snake + ".cpp",
		StructFile:       snake + "_struct.hpp",
		ParentHeaderFile: parentSnake + ".hpp",

		QualifiedClassName:       Qualify(spec.ClassName),
		QualifiedParentClassName: Qualify(spec.ParentClassName),
		StructType:               Qualify(spec.ClassName + "Struct"),
		StructName:               snake + "_struct",
		ChildModuleVariable:      "child_of_" + parentSnake,
	}
}

// Qualify prefixes name with the ontology namespace.
func Qualify(name string) string {
	return Namespace + "::" + name
}

// SnakeCase converts a camel-case identifier to snake_case:
// "ShapeshifterForm" -> "shapeshifter_form", "AB" -> "a_b".
// Only ASCII capitals start a word; lowercasing uses full Unicode case
// mapping, so "İStanbul" -> "i̇_stanbul".
func SnakeCase(s string) string {
	return cases.Lower(language.Und).String(splitWords(s))
}

// IncludeGuard returns the include-guard macro for a class header:
// "MyWidget" -> "__MY_WIDGET_HPP_INCLUDED", "aßB" -> "__ASS_B_HPP_INCLUDED".
func IncludeGuard(className string) string {
	return "__" + cases.Upper(language.Und).String(splitWords(className)) + "_HPP_INCLUDED"
}

// splitWords inserts an underscore before every ASCII uppercase letter
// except one in the first position.
func splitWords(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i > 0 && c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteByte(c)
	}
	return b.String()
}
