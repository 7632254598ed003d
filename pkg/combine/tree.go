package combine

import (
	"sort"
	"strings"
)

// treeNode is a directory or file in the rendered tree.
type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) isDir() bool {
	return n.children != nil
}

// GenerateTree renders slash-separated relative paths as a box-drawing tree
// headed by "Tree:". Directories come first, then files, each group sorted
// case-insensitively. It returns "" for no paths.
func GenerateTree(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	root := &treeNode{children: map[string]*treeNode{}}
	for _, p := range paths {
		parts := strings.Split(p, "/")
		node := root
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part}
				node.children[part] = child
			}
			if i < len(parts)-1 && child.children == nil {
				child.children = map[string]*treeNode{}
			}
			node = child
		}
	}

	var lines []string
	lines = append(lines, "Tree:")
	lines = renderTree(root, "", lines)
	return strings.Join(lines, "\n")
}

func renderTree(node *treeNode, prefix string, lines []string) []string {
	entries := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		entries = append(entries, child)
	}

	// Sort entries: directories first, then files, alphabetically
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir() != entries[j].isDir() {
			return entries[i].isDir()
		}
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].name < entries[j].name
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir() {
			lines = append(lines, prefix+connector+entry.name+"/")
			lines = renderTree(entry, prefix+extension, lines)
			continue
		}
		lines = append(lines, prefix+connector+entry.name)
	}
	return lines
}

// includedPaths returns the relative paths of tasks whose slot is non-empty.
func includedPaths(tasks []FileTask, slots []string, root string) []string {
	var paths []string
	for _, task := range tasks {
		if slots[task.Index] != "" {
			paths = append(paths, relativePath(root, task.Path))
		}
	}
	return paths
}
