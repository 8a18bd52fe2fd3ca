package color

import "github.com/fatih/color"

// Green sprint green string
var Green = color.New(color.FgGreen).SprintFunc()

// Red sprint red string
var Red = color.New(color.FgRed).SprintFunc()

// Yellow sprint yellow string
var Yellow = color.New(color.FgYellow).SprintFunc()

// Cyan sprint cyan string
var Cyan = color.New(color.FgCyan).SprintFunc()
