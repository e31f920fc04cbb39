package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/oatssss/vcxproj-stream-editor/vcxml"
)

// rewrite runs filter over the file at path: in place by default, to out
// when given, or as a colored diff preview on stdout when diff is set.
func rewrite(path, out string, diff bool, filter vcxml.Filter) error {
	if diff {
		return previewDiff(path, filter)
	}
	if err := vcxml.TransformFile(path, filter, out); err != nil {
		return err
	}
	if out == "" || out == path {
		log.Printf("rewrote %s", path)
	} else {
		log.Printf("wrote %s", out)
	}
	return nil
}

func previewDiff(path string, filter vcxml.Filter) error {
	before, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	err = vcxml.Transform(f, filter, &buf)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(before), buf.String(), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if !diffsChanged(diffs) {
		color.New(color.FgGreen).Printf("%s: no changes\n", path)
		return nil
	}
	_, err = fmt.Println(dmp.DiffPrettyText(diffs))
	return err
}

func diffsChanged(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}
