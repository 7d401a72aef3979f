package platform

import (
	"fmt"
	"time"

	"github.com/connorhough/selgrab/internal/automation"
	"github.com/connorhough/selgrab/internal/selection"
)

const scriptPrelude = `use AppleScript version "2.4"
use scripting additions
use framework "Foundation"
use framework "AppKit"
`

// The alert volume is muted around the keystroke so apps with nothing
// selected do not beep.
const copyKeystrokeScript = scriptPrelude + `
set savedAlertVolume to alert volume of (get volume settings)
tell application "System Events"
	set volume alert volume 0
end tell

tell application "System Events" to keystroke "c" using {command down}

tell application "System Events"
	set volume alert volume savedAlertVolume
end tell
`

const captureScript = scriptPrelude + `
set savedClipboard to the clipboard
set thePasteboard to current application's NSPasteboard's generalPasteboard()
set theCount to thePasteboard's changeCount()

delay %s

if thePasteboard's changeCount() is theCount then
	return ""
end if

set theSelectedText to the clipboard
set the clipboard to savedClipboard
theSelectedText
`

const filePathScript = scriptPrelude + `
set savedAlertVolume to alert volume of (get volume settings)
set savedClipboard to the clipboard
set thePasteboard to current application's NSPasteboard's generalPasteboard()
set theCount to thePasteboard's changeCount()

tell application "System Events"
	set volume alert volume 0
end tell

tell application "System Events" to keystroke "c" using {command down, option down}
delay %s

tell application "System Events"
	set volume alert volume savedAlertVolume
end tell

if thePasteboard's changeCount() is theCount then
	return ""
end if

set theSelectedText to the clipboard
set the clipboard to savedClipboard
theSelectedText
`

const frontmostAppScript = `tell application "System Events" to get name of first application process whose frontmost is true`

// AppleScripts returns the osascript payloads for the swap techniques with
// the given settle delay.
func AppleScripts(settle time.Duration) selection.Scripts {
	delay := appleScriptSeconds(settle)
	return selection.Scripts{
		Capture:   automation.Script{Name: automation.CaptureClipboard, Body: fmt.Sprintf(captureScript, delay)},
		Copy:      automation.Script{Name: automation.SendCopy, Body: copyKeystrokeScript},
		FilePaths: automation.Script{Name: automation.CopyFilePaths, Body: fmt.Sprintf(filePathScript, delay)},
	}
}

func appleScriptSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
