package scanner

// RootFolder is the group key used for files directly under the scan root.
const RootFolder = "."

// FolderGroup holds the source files found directly under one folder.
type FolderGroup struct {
	// Folder is the path relative to the scan root; RootFolder for the
	// root itself.
	Folder string

	// Files are the matching file paths (relative to the scan root) in
	// traversal order.
	Files []string
}

// Result represents a completed scan of a directory tree.
type Result struct {
	// Root is the absolute scan root.
	Root string

	// Groups lists folders with at least one matching file, in the
	// order they were first encountered during the walk.
	Groups []FolderGroup
}

// IsEmpty returns true if no source files were found.
func (r *Result) IsEmpty() bool {
	return len(r.Groups) == 0
}

// FileCount returns the total number of files across all groups.
func (r *Result) FileCount() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Files)
	}
	return n
}

// Folders returns the group keys in encounter order.
func (r *Result) Folders() []string {
	folders := make([]string, 0, len(r.Groups))
	for _, g := range r.Groups {
		folders = append(folders, g.Folder)
	}
	return folders
}
