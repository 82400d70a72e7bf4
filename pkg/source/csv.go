// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package source reads matchmaking requests from separated-value files.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/go-andiamo/splitter"
	"gopkg.in/typ.v4/slices"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/constants"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/utils"
)

// CSVSource reads requests from a file with one `requestID;playerID;premium;skill;type` record per line.
type CSVSource struct {
	Path      string
	Separator rune
}

func NewCSVSource(path string, separator rune) *CSVSource {
	return &CSVSource{Path: path, Separator: separator}
}

func (s *CSVSource) GetRequests(rootScope *envelope.Scope) ([]models.Request, []models.LineError, error) {
	scope := rootScope.NewChildScope("CSVSource.GetRequests")
	defer scope.Finish()
	scope.SetAttributes("source.path", s.Path)

	file, err := os.Open(s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open request file: %w", err)
	}
	defer file.Close()

	requests, lineErrors, err := ReadRequests(file, s.Separator)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read request file %s: %w", s.Path, err)
	}

	scope.Log.WithField("path", s.Path).Debugf("read %d requests, %d invalid lines", len(requests), len(lineErrors))
	return requests, lineErrors, nil
}

type numberedLine struct {
	number int
	text   string
}

// ReadRequests parses every line of r. Blank lines and a leading header line are skipped; a line that
// cannot be parsed is reported as a LineError and the rest of the input is still read.
func ReadRequests(r io.Reader, separator rune) ([]models.Request, []models.LineError, error) {
	fieldSplitter, err := splitter.NewSplitter(separator, splitter.DoubleQuotes)
	if err != nil {
		return nil, nil, err
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, nil, err
	}

	lines = slices.Filter(lines, func(line numberedLine) bool { return line.text != "" })
	if len(lines) > 0 && isHeader(lines[0].text) {
		lines = lines[1:]
	}

	var (
		requests   []models.Request
		lineErrors []models.LineError
	)
	for _, line := range lines {
		if len(line.text) > constants.MaxRequestLineLength {
			lineErrors = append(lineErrors, models.LineError{
				Line: line.number,
				Text: line.text[:constants.MaxRequestLineLength] + "...",
				Err:  fmt.Errorf("%w: %d bytes", models.ErrLineTooLong, len(line.text)),
			})
			continue
		}
		request, err := parseRequest(fieldSplitter, line.text)
		if err != nil {
			lineErrors = append(lineErrors, models.LineError{Line: line.number, Text: line.text, Err: err})
			continue
		}
		requests = append(requests, request)
	}

	return requests, lineErrors, nil
}

// readLines splits r into trimmed, numbered lines. Lines have no length limit here; overlong ones are
// rejected one by one by the caller.
func readLines(r io.Reader) ([]numberedLine, error) {
	var lines []numberedLine
	reader := bufio.NewReader(r)
	for number := 1; ; number++ {
		text, err := reader.ReadString('\n')
		if text != "" {
			lines = append(lines, numberedLine{number: number, text: strings.TrimSpace(text)})
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ParseRequest parses a single record using separator between fields.
func ParseRequest(line string, separator rune) (models.Request, error) {
	fieldSplitter, err := splitter.NewSplitter(separator, splitter.DoubleQuotes)
	if err != nil {
		return models.Request{}, err
	}
	return parseRequest(fieldSplitter, line)
}

func parseRequest(fieldSplitter splitter.Splitter, line string) (models.Request, error) {
	parts, err := fieldSplitter.Split(line)
	if err != nil {
		return models.Request{}, fmt.Errorf("%w: %s", models.ErrMalformedLine, err.Error())
	}
	fields := pie.Map(parts, utils.TrimQuotes)
	if len(fields) != constants.RequestFieldCount {
		return models.Request{}, fmt.Errorf("%w: want %d, got %d", models.ErrInvalidFieldCount, constants.RequestFieldCount, len(fields))
	}

	premium, err := strconv.ParseBool(fields[2])
	if err != nil {
		return models.Request{}, fmt.Errorf("%w: %q", models.ErrInvalidPremium, fields[2])
	}
	skill, err := strconv.Atoi(fields[3])
	if err != nil {
		return models.Request{}, fmt.Errorf("%w: %q", models.ErrInvalidSkill, fields[3])
	}
	matchType, err := models.ParseMatchType(fields[4])
	if err != nil {
		return models.Request{}, err
	}

	request := models.Request{
		RequestID:  fields[0],
		PlayerID:   fields[1],
		Premium:    premium,
		SkillLevel: skill,
		MatchType:  matchType,
	}
	if err := request.Validate(); err != nil {
		return models.Request{}, err
	}
	return request, nil
}

// isHeader matches lines like "RequestID;PlayerID;..." or "request_id,player_id,...".
func isHeader(line string) bool {
	normalized := strings.NewReplacer("_", "", "-", "", " ", "", `"`, "").Replace(strings.ToLower(line))
	return strings.Contains(normalized, constants.RequestHeaderMarker)
}
