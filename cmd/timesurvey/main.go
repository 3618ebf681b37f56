// Surveys the high-resolution timing mechanisms of the host, displaying
// elapsed milliseconds from three independent clock sources side by side.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aknopov/fancylogger"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/aknopov/timesurvey"
	"github.com/aknopov/timesurvey/tsc"
)

const initFailPause = 2 * time.Second

var logger = fancylogger.NewLogger(os.Stderr, fancylogger.LiteFg)

func main() {
	step := flag.Uint64("step", timesurvey.DefaultStep, "")
	end := flag.Uint64("end", timesurvey.DefaultEnd, "")
	forever := flag.Bool("forever", false, "")
	calibrate := flag.Bool("calibrate", false, "")
	freq := flag.Uint64("freq", 0, "")
	flag.Usage = func() { usage(os.Stderr) }
	flag.Parse()

	cpuInfo := timesurvey.AssumeOnErr(cpu.Info, []cpu.InfoStat{})
	logHostInfo(cpuInfo)

	conv := tsc.NewConverter(pickFrequency(*calibrate, *freq, cpuInfo))
	logger.Debug().Msgf("Cycle counter read overhead: %d counts", tsc.ReadOverhead())

	screen, err := timesurvey.NewScreen(os.Stdout)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("Display init failed, restarting")
		time.Sleep(initFailPause)
		os.Exit(1)
	}

	cfg := timesurvey.Config{Step: *step, End: *end, Forever: *forever}
	timesurvey.NewSurvey(cfg, conv, screen).Run()

	screen.Close()
}

// pickFrequency resolves the cycle counter frequency in Hz: an explicit
// cycles-per-millisecond override wins, then wall-clock calibration, then the
// CPU's advertised rate, then the built-in reference constant.
func pickFrequency(calibrate bool, cyclesPerMilli uint64, cpuInfo []cpu.InfoStat) uint64 {
	switch {
	case cyclesPerMilli > 0:
		return cyclesPerMilli * 1000
	case calibrate:
		freqHz := tsc.Calibrate()
		logger.Info().Msgf("Calibrated cycle counter frequency: %d Hz", freqHz)
		return freqHz
	case len(cpuInfo) > 0 && cpuInfo[0].Mhz > 0:
		return uint64(cpuInfo[0].Mhz * 1e6)
	default:
		return tsc.DefaultFrequencyHz
	}
}

func logHostInfo(cpuInfo []cpu.InfoStat) {
	info := timesurvey.AssumeOnErr(host.Info, &host.InfoStat{})
	logger.Info().Str("host", info.Hostname).Str("os", info.Platform).Msg("Surveying timers")
	if len(cpuInfo) > 0 {
		logger.Info().Str("cpu", cpuInfo[0].ModelName).Msgf("Nominal frequency %.0f MHz", cpuInfo[0].Mhz)
	}
}

func usage(sink *os.File) {
	fmt.Fprintln(sink, `Surveys host timing mechanisms, redrawing elapsed milliseconds
from three independent clock sources once per sampling step
Usage: timesurvey [-step=...] [-end=...] [-forever] [-calibrate] [-freq=...]
-step - sampling interval in milliseconds (default 1000)
-end - total run duration in milliseconds (default 315000)
-forever - keep sampling until interrupted
-calibrate - measure the cycle counter frequency against the wall clock
-freq - cycle counter frequency in cycles per millisecond (0 = CPU advertised rate)`)
}
