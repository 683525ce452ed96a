package validator

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	errEmptyFreeText = errors.New("name has no free text")
	errTooFewTokens  = errors.New("file stem has fewer than four tokens")
)

// FolderName is the structured form of a folder name "_<Code>_<FreeText>".
type FolderName struct {
	Code     string
	FreeText string
}

// FileStem is the structured form of a file stem
// "<Code>_<Date>_<FreeText>_<UserCode>".
type FileStem struct {
	Code     string
	Date     string
	FreeText string
	UserCode string
}

// ParseFolderName strips the leading underscores and splits on '_'. The
// first token is the code, the rest is rejoined as the free text.
//
//	ParseFolderName("_F2b_My_second_folder") // {F2b My_second_folder}
func ParseFolderName(raw string) (FolderName, error) {
	code, rest, _ := strings.Cut(strings.TrimLeft(raw, "_"), "_")
	if rest == "" {
		return FolderName{}, errEmptyFreeText
	}
	return FolderName{Code: code, FreeText: rest}, nil
}

// ParseFileStem splits a stem on '_': code, date, free text, user code. The
// free text may itself contain underscores. No semantic check is done here.
//
//	ParseFileStem("F2b_220101_My_second_file_DEF") // {F2b 220101 My_second_file DEF}
func ParseFileStem(raw string) (FileStem, error) {
	tokens := strings.Split(strings.TrimLeft(raw, "_"), "_")
	if len(tokens) < 4 {
		return FileStem{}, errTooFewTokens
	}
	last := len(tokens) - 1
	return FileStem{
		Code:     tokens[0],
		Date:     tokens[1],
		FreeText: strings.Join(tokens[2:last], "_"),
		UserCode: tokens[last],
	}, nil
}

// fileStem drops the last extension. Dot-files without another extension
// keep their whole name.
func fileStem(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		return name
	}
	return stem
}
