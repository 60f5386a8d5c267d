// Package model defines the data structures shared by the flagstrip layers.
package model

import "os"

// Path represents a file system path.
type Path string

// Unit is one source file discovered under the processing root.
type Unit struct {
	Path Path
	Mode os.FileMode
	Size int64
}
