/*
Copyright 2019 Google Inc. All Rights Reserved.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// This helper tool is used to parse glog files produced by the Agent. It will extract the
// periodically produced outcome stats log lines, giving insight into the Agent's ingestion
// behavior and performance. The output from this tool is a csv file which can easily be
// imported into your favorite spreadsheet program for easy analysis.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	log = flag.String("log", "/tmp/agentmain.INFO", "The source log file to parse.")
	csv = flag.String("csv", "/tmp/agentmain.INFO.csv", "The target csv file to write to.")
)

var (
	// headerRE matches the glog line that opens one stats block. The glog header format is
	// defined in github.com/golang/glog/glog.go; the msg is written by the statslog package.
	// Example: I0824 12:34:56.789012  1234 statslog.go:99] outcome(count)[time min,max,avg]:
	headerRE = regexp.MustCompile(`^[IWEF](\d{2})(\d{2}) (\d{2}:\d{2}:\d{2}\.\d+).*\] outcome\(count\)\[time min,max,avg\]:$`)

	// sampleRE matches the continuation lines of a stats block, one outcome each.
	// Example: "\tsuccess(5)[0s,4ms,2ms]"
	sampleRE = regexp.MustCompile(`^\t([a-z_]+)\((\d+)\)\[([^,]+),([^,]+),([^\]]+)\]$`)
)

func main() {
	flag.Parse()

	logFile, err := os.Open(*log)
	if err != nil {
		panic(err)
	}
	defer logFile.Close()
	fmt.Printf("opened %v for read\n", *log)

	csvFile, err := os.Create(*csv)
	if err != nil {
		panic(err)
	}
	defer csvFile.Close()
	fmt.Printf("opened %v for write\n", *csv)

	csvFile.WriteString("month,day,time,outcome,count,min,max,avg\n")
	linesWritten := 0
	var header []string
	reader := bufio.NewReader(logFile)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				fmt.Println("ReadString got err: ", err)
			}
			break
		}
		line = strings.TrimRight(line, "\n")
		if m := headerRE.FindStringSubmatch(line); m != nil {
			header = m[1:]
			continue
		}
		vals := parseSampleLine(header, line)
		if vals == nil {
			continue
		}
		csvFile.WriteString(strings.Join(vals, ",") + "\n")
		linesWritten++
		fmt.Printf(".")
	}
	fmt.Printf("\nwrote %d lines to %s\n", linesWritten, *csv)
}

// parseSampleLine turns one outcome continuation line into a csv row, prefixed
// with the month/day/time of the stats block it belongs to. Returns nil for
// lines that are not part of a stats block.
func parseSampleLine(header []string, line string) []string {
	if header == nil {
		return nil
	}
	m := sampleRE.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return append(append([]string{}, header...), m[1:]...)
}
