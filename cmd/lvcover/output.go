package main

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// bold renders emphasized values in the console output.
var bold = color.New(color.Bold).SprintfFunc()

// output the given message with formatting.
func output(w io.Writer, format string, a ...any) {
	_, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}

// table sends a bordered table with the given header and rows to w.
func table(w io.Writer, header []string, rows [][]string) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetBorder(true)
	tbl.SetAutoWrapText(false)
	tbl.AppendBulk(rows)
	tbl.Render()
}
