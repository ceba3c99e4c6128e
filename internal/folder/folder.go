package folder

// Paths, relative to the folder they are joined with
const (
	// Launch history database, relative to the history base path
	Database = "history.db"
	// Requirements file, relative to the project root and to the GUI folder
	Requirements = "requirements.txt"
	// Install stamp, relative to the virtual environment
	Stamp = ".termlaunch-stamp.toml"
	// Django management script, relative to the GUI folder
	ManageScript = "manage.py"
)
