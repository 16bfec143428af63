package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/streamkit/mediad/errors"
	"github.com/streamkit/mediad/object"
	"github.com/streamkit/mediad/pipeline"
	"github.com/streamkit/mediad/property"
)

func main() {
	var (
		objName     = flag.String("object", "", "Object to inspect")
		propName    = flag.String("prop", "", "Property to read (requires -object)")
		list        = flag.Bool("list", false, "List registered objects and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		object.SetLogger(logger)
		property.SetLogger(logger)
	}

	reg := object.NewRegistry()
	defer reg.Close()

	demo, err := pipeline.NewDemo(reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(reg, demo); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *list {
		listObjects(reg)
		return
	}

	if *objName == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -object <name> [-prop name]")
		fmt.Fprintln(os.Stderr, "       inspect -list")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := inspect(reg, *objName, *propName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listObjects(reg *object.Registry) {
	fmt.Printf("Registered objects: %d\n\n", reg.Len())
	reg.Each(func(h object.Handle, obj object.Object) bool {
		fmt.Printf("  %-8s class %s, %d properties\n",
			obj.ObjectName(), obj.Class().Name(), obj.Class().Len())
		return true
	})
}

// findRef locates a registered object by name.
func findRef(reg *object.Registry, name string) (object.Ref, bool) {
	var ref object.Ref
	reg.Each(func(h object.Handle, obj object.Object) bool {
		if obj.ObjectName() == name {
			ref = object.Ref{Registry: reg, Handle: h}
			return false
		}
		return true
	})
	return ref, !ref.IsZero()
}

func inspect(reg *object.Registry, objName, propName string) error {
	ref, ok := findRef(reg, objName)
	if !ok {
		return fmt.Errorf("no object %q registered", objName)
	}

	reader := property.NewReader()

	if propName != "" {
		res, err := reader.Read(ref, propName)
		if err != nil {
			return err
		}
		v, err := res.Read()
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s) = %v\n", res.Name(), res.Capabilities(), v)
		return nil
	}

	obj, _ := ref.Object()
	fmt.Printf("Object: %s (class %s)\n\n", obj.ObjectName(), obj.Class().Name())
	for _, spec := range obj.Class().Specs() {
		fmt.Printf("  %-14s %-8s %s\n", spec.Name, spec.Kind, readCell(reader, ref, spec.Name))
	}
	return nil
}

// readCell renders a property's current value, or the failure kind when the
// property cannot be served as a resource.
func readCell(reader property.Reader, ref object.Ref, name string) string {
	res, err := reader.Read(ref, name)
	if err != nil {
		return "<" + errKind(err) + ">"
	}
	v, err := res.Read()
	if err != nil {
		return "<" + errKind(err) + ">"
	}
	return fmt.Sprintf("= %v", v)
}

func errKind(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return string(e.Kind)
	}
	return err.Error()
}
