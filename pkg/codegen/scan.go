package codegen

import (
	"errors"
	"fmt"
	"go/types"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"
)

// Package is the scan result of one Go package.
type Package struct {
	// Name is the package name.
	Name string

	// Path is the import path.
	Path string

	// Dir is the directory the package was loaded from.
	Dir string

	// Types are the exported struct types with setters, sorted by name.
	Types []Type
}

// Constructors returns the constructors of every type, in type order.
func (p *Package) Constructors() []string {
	var names []string
	for _, t := range p.Types {
		names = append(names, t.Constructors...)
	}
	return names
}

// Type is an exported struct type with at least one setter.
type Type struct {
	Name string

	// Setters are the SetX methods of the pointer method set.
	Setters []string

	// Constructors are the exported NewX functions returning the type.
	Constructors []string
}

// ErrNoPackage is returned when the directory holds no Go package.
var ErrNoPackage = errors.New("no Go package found")

// Scan loads the Go package in dir and lists its checkable types.
func Scan(dir string) (*Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %s: %w", dir, err)
	}
	if len(pkgs) == 0 || pkgs[0].Types == nil {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoPackage)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		msgs := make([]string, len(pkg.Errors))
		for i, e := range pkg.Errors {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("failed to load package %s: %s", pkg.PkgPath, strings.Join(msgs, "; "))
	}

	return scanTypes(pkg.Types, dir), nil
}

func scanTypes(tp *types.Package, dir string) *Package {
	result := &Package{Name: tp.Name(), Path: tp.Path(), Dir: dir}
	scope := tp.Scope()

	index := make(map[*types.TypeName]int)
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() || obj.IsAlias() {
			continue
		}
		named, ok := obj.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}
		if _, ok := named.Underlying().(*types.Struct); !ok {
			continue
		}

		setters := settersOf(named)
		if len(setters) == 0 {
			continue
		}
		index[obj] = len(result.Types)
		result.Types = append(result.Types, Type{Name: name, Setters: setters})
	}

	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !fn.Exported() || !strings.HasPrefix(name, "New") {
			continue
		}
		if target := constructedType(fn); target != nil {
			if i, ok := index[target]; ok {
				result.Types[i].Constructors = append(result.Types[i].Constructors, name)
			}
		}
	}

	return result
}

// settersOf returns the SetX methods of *named, sorted.
func settersOf(named *types.Named) []string {
	var setters []string
	mset := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < mset.Len(); i++ {
		fn, ok := mset.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() || !isSetterName(fn.Name()) {
			continue
		}
		sig := fn.Type().(*types.Signature)
		if sig.Params().Len() != 1 || sig.Variadic() {
			continue
		}
		switch sig.Results().Len() {
		case 0:
		case 1:
			if !isError(sig.Results().At(0).Type()) {
				continue
			}
		default:
			continue
		}
		setters = append(setters, fn.Name())
	}
	sort.Strings(setters)
	return setters
}

// constructedType returns the type name fn builds when fn returns T, *T,
// (T, error) or (*T, error) and takes no type parameters.
func constructedType(fn *types.Func) *types.TypeName {
	sig := fn.Type().(*types.Signature)
	if sig.TypeParams().Len() > 0 || sig.Recv() != nil {
		return nil
	}

	results := sig.Results()
	switch {
	case results.Len() == 1:
	case results.Len() == 2 && isError(results.At(1).Type()):
	default:
		return nil
	}

	t := results.At(0).Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if named, ok := t.(*types.Named); ok {
		return named.Obj()
	}
	return nil
}

func isSetterName(name string) bool {
	if !strings.HasPrefix(name, "Set") || len(name) == len("Set") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name[len("Set"):])
	return unicode.IsUpper(r)
}

func isError(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}
