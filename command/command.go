// Package command lists the RePKG program names and the command-line flags it understands.
package command

// A note about RePKG: it is a .NET console application distributed as RePKG.exe.
// On Linux and macOS it is usually run from a self-contained build named RePKG,
// or from a wrapper script on the PATH named repkg.

const (
	RePKG    = "RePKG"     // RePKG is the program name without an extension.
	RePKGExe = "RePKG.exe" // RePKGExe is the Windows program name.
	Short    = "repkg"     // Short is the display name used in logs.
)

// Extract mode flags.
const (
	Output       = "-o"               // -o output directory
	Recursive    = "-r"               // -r recurse into subfolders, always used
	Tex          = "-t"               // -t convert TEX files into images
	SingleDir    = "-s"               // -s put all extracted files in one directory
	UseName      = "-n"               // -n use the project.json name as the subfolder
	NoTexConvert = "--no-tex-convert" // --no-tex-convert skip TEX conversion
	Overwrite    = "--overwrite"      // --overwrite overwrite all existing files
	CopyProject  = "-c"               // -c copy project.json and preview.jpg into the output
	OnlyExts     = "-e"               // -e only extract these extensions
	IgnoreExts   = "-i"               // -i ignore these extensions
)

// Info mode flags.
const (
	SortBy       = "-b"             // -b sort key, name, extension or size
	Sort         = "-s"             // -s sort entries ascending
	PrintEntries = "-e"             // -e print entries in packages
	InfoTex      = "-t"             // -t dump info about TEX files
	ProjectInfo  = "-p"             // -p project info keys
	TitleFilter  = "--title-filter" // --title-filter filter by project title
)
