package seed

// File is the top-level structure of a seed YAML file.
//
//	documents:
//	  - title: Report1
//	    content: quarterly figures
//	    author: {id: u1, name: Alice}
//	    created: 2023-01-01
type File struct {
	Documents []Entry `yaml:"documents"`
}

// Entry is one seed document. Seeds never carry an ID: the store assigns it.
type Entry struct {
	Title   string      `yaml:"title"`
	Content string      `yaml:"content"`
	Author  EntryAuthor `yaml:"author"`
	Created string      `yaml:"created,omitempty"` // RFC 3339 or YYYY-MM-DD, optional
}

type EntryAuthor struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}
