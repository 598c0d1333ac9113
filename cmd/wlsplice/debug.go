package main

import (
	"fmt"
	"io"

	"github.com/jeffwilliams/wiredlist"
	"github.com/jeffwilliams/wiredlist/internal/script"
)

const (
	LogCatgScript = "Script"
	LogCatgList   = "List"
	LogCatgConf   = "Config"
	LogCatgOutput = "Output"
)

var debugLogCategories = []string{
	LogCatgScript,
	LogCatgList,
	LogCatgConf,
	LogCatgOutput,
}

func initDebugging() {
	debugLog.SetMax(settings.Debug.MaxEntries)

	wiredlist.Debug = func(message string, args ...interface{}) {
		log(LogCatgList, message, args...)
	}
	script.Debug = func(message string, args ...interface{}) {
		log(LogCatgScript, message+"\n", args...)
	}
}

func dumpLog(w io.Writer) {
	fmt.Fprint(w, debugLog.String(debugLogCategories...))
}
