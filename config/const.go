package config

import "strings"

// AppVersion is the version of the tool, stamped at build time.
var AppVersion string

// AppName is the name of the tool.
const AppName = "CamOpts"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// SettingsDBFile is the file name of the durable settings database inside
// the tool's config directory.
const SettingsDBFile = "settings.db"

// DefaultCommandPortAddr is the address the host's script command port is
// expected on when none is given.
const DefaultCommandPortAddr = "127.0.0.1:7005"

// BridgeAddr is the loopback address of the local bridge API.
const BridgeAddr = "127.0.0.1:49605"
