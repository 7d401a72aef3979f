package config

const configTemplate = `# selgrab configuration file

# How many applications to remember the working technique for
cache_capacity: 100

# How long to wait for a synthetic copy to land on the clipboard
settle_delay: 100ms

# Application treated as the file manager (selection is read as file paths)
# Defaults: Finder (macOS), org.gnome.Nautilus (Linux), explorer.exe (Windows)
# file_manager: Finder

# Keystrokes used where no AppleScript is available (ignored on macOS)
# copy_chord: ctrl+c
# path_chord: ctrl+shift+c

# Shortcut that triggers a retrieval in watch mode
hotkey: ctrl+shift+space

# Observability settings
log_level: info  # debug, info, warn, error
`
