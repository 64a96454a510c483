package config

import "time"

// Base application details
const AppName = "deck"
const ConfigDirName = "deck"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "deck.log"

// UI Layout
const StatusBarHeight = 1
const ContentMarginX = 2
const ContentMarginY = 1

// Status Bar
const MessageTimeout = 2 * time.Second
