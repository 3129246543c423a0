/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// exportScores overwrites path with one header row and one row per player,
// picking the format from the file extension.
func exportScores(path string, table *scoreTable) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return exportCSV(path, table)
	case ".xlsx":
		return exportXLSX(path, table)
	default:
		return fmt.Errorf("unsupported output format (must be .csv or .xlsx): %s", path)
	}
}

func scoreHeader(table *scoreTable) []string {
	header := make([]string, 0, len(table.questions)+2)
	header = append(header, "Name")

	for _, question := range table.questions {
		header = append(header, "Question "+question)
	}

	return append(header, "Total")
}

func scoreRow(table *scoreTable, player string) []string {
	row := make([]string, 0, len(table.questions)+2)
	row = append(row, player)

	for _, question := range table.questions {
		row = append(row, strconv.Itoa(table.point(player, question)))
	}

	return append(row, strconv.Itoa(table.total(player)))
}

func exportCSV(path string, table *scoreTable) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(scoreHeader(table)); err != nil {
		return err
	}

	for _, player := range table.players {
		if err := writer.Write(scoreRow(table, player)); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

func exportXLSX(path string, table *scoreTable) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(file.GetActiveSheetIndex())

	header := make([]any, 0, len(table.questions)+2)
	for _, column := range scoreHeader(table) {
		header = append(header, column)
	}

	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for index, player := range table.players {
		row := make([]any, 0, len(table.questions)+2)
		row = append(row, player)

		for _, question := range table.questions {
			row = append(row, table.point(player, question))
		}

		row = append(row, table.total(player))

		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return err
		}

		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return file.SaveAs(path)
}
