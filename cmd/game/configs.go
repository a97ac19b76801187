package main

import "embed"

//go:embed configs
var builtinConfigs embed.FS
