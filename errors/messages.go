package errors

import "fmt"

const wordpressRootHint = "Make sure you're at the root level of a WordPress installation."

var (
	DeployCommandNotSet = New(ConfigMissingValue, "deploy_command not set. Make sure it is included in your Wordfile or pass --command")
	WordPressNotFound   = New(MissingFile, "WordPress not found. "+wordpressRootHint)
	ThemeNameMissing    = New(InvalidArgument, "Specify a theme name. Run wordless theme NAME")
	ProjectNameMissing  = New(InvalidArgument, "Specify a project name. Run wordless new NAME")
)

func ToolNotAvailable(tool string) error {
	return New(MissingTool, fmt.Sprintf("%s is not available. Please install %s.", tool, tool))
}

func DirectoryNotFound(dir string) error {
	return New(MissingDirectory, fmt.Sprintf("Directory '%s' not found. %s", dir, wordpressRootHint))
}

func FileNotFound(file string) error {
	return New(MissingFile, fmt.Sprintf("File '%s' not found. %s", file, wordpressRootHint))
}

func InvalidName(name string) error {
	return New(InvalidArgument, fmt.Sprintf("'%s' is not a valid name. Use a plain directory name.", name))
}
