// This file is part of Gopher16.
//
// Gopher16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher16.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/debugger"
	"github.com/jetsetilly/gopher16/debugger/easyterm"
	"github.com/jetsetilly/gopher16/digest"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/logger"
	"github.com/jetsetilly/gopher16/modalflag"
	"github.com/jetsetilly/gopher16/performance"
	"github.com/jetsetilly/gopher16/performance/limiter"
	"github.com/jetsetilly/gopher16/prefs"
	"github.com/jetsetilly/gopher16/screenshot"
	"github.com/jetsetilly/gopher16/statsview"
	"github.com/jetsetilly/gopher16/version"
	"github.com/jetsetilly/gopher16/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"

	// function to call if the program is interrupted. replaces any
	// previous function. a nil function removes the cleanup.
	//
	// takes a func() argument.
	reqCleanup stateReq = "CLEANUP"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	var cleanup func()

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if cleanup != nil {
				cleanup()
			}
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}

			case reqCleanup:
				if state.args == nil {
					cleanup = nil
				} else if f, ok := state.args.(func()); ok {
					cleanup = f
				} else {
					panic(fmt.Sprintf("cannot convert %s arguments into func()", reqCleanup))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "PERFORMANCE", "DIGEST", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "STEP":
		err = step(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "DIGEST":
		err = digests(md)

	case "INFO":
		err = info(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the single cartridge argument of a mode.
func cartridgeArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

// create a console for the main emulation with the cartridge attached.
func newConsole(cartload cartridgeloader.Loader, label environment.Label, normalise bool) (*hardware.Console, error) {
	env, err := environment.NewEnvironment(label, nil)
	if err != nil {
		return nil, err
	}
	if normalise {
		env.Normalise()
	}

	con, err := hardware.NewConsole(env)
	if err != nil {
		return nil, err
	}

	err = con.AttachCartridge(cartload)
	if err != nil {
		return nil, err
	}

	return con, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	frames := md.AddInt("frames", 0, "number of frames to run (0 runs until interrupted)")
	wav := md.AddString("wav", "", "record audio to wav file")
	shot := md.AddString("screenshot", "", "save the final frame to a PNG file")
	scale := md.AddInt("scale", 2, "scaling of the screenshot")
	printDigest := md.AddBool("digest", false, "print video and audio digests when finished")
	realtime := md.AddBool("realtime", false, "run at the speed of the console")
	stats := md.AddBool("statsview", false, "run the stats server")
	prefsArg := md.AddString("prefs", "", "preferences to apply (key::value; key::value)")
	verbose := md.AddBool("verbose", false, "print cartridge information and echo the log")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	if *verbose {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(md.Output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	con, err := newConsole(cartload, environment.MainEmulation, false)
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Fprintln(md.Output, con.Cart.Header)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav)
		if err != nil {
			return err
		}
	}

	var vdig *digest.Video
	var adig *digest.Audio
	if *printDigest {
		vdig = digest.NewVideo()
		adig = digest.NewAudio()
	}

	lim := limiter.NewLimiter()

	// run mode handles interrupts so that output files are completed
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	continueCheck := func() (bool, error) {
		samples := con.Samples()
		if aw != nil {
			aw.AddSamples(samples)
		}
		if vdig != nil {
			vdig.AddFrame(con.Frame())
			adig.AddSamples(samples)
		}
		if *realtime {
			lim.Pace(con.Region.Nanoseconds(con.Timing.Master))
		}

		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	}

	startTime := time.Now()

	if *frames > 0 {
		err = con.RunForFrameCount(*frames, func(_ int) (bool, error) {
			return continueCheck()
		})
	} else {
		err = con.Run(continueCheck)
	}
	if err != nil {
		return err
	}

	if *verbose {
		fps, _ := performance.CalcFPS(con.Region, int(con.Timing.Frames), time.Since(startTime).Seconds())
		fmt.Fprintf(md.Output, "%d frames (%.2f fps)\n", con.Timing.Frames, fps)
		con.Faults.WriteLog(md.Output)
	}

	if aw != nil {
		if err := aw.EndMixing(); err != nil {
			return err
		}
	}

	if *shot != "" {
		if err := screenshot.Save(con.Frame(), *scale, *shot); err != nil {
			return err
		}
	}

	if vdig != nil {
		adig.Flush()
		fmt.Fprintf(md.Output, "video: %s\naudio: %s\n", vdig.Hash(), adig.Hash())
	}

	return nil
}

func step(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	prefsArg := md.AddString("prefs", "", "preferences to apply (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		defer prefs.PopCommandLineStack()
	}

	con, err := newConsole(cartload, environment.MainEmulation, false)
	if err != nil {
		return err
	}

	term := &easyterm.Terminal{}
	err = term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	term.CBreakMode()
	sync.state <- stateRequest{req: reqCleanup, args: func() { term.CanonicalMode() }}
	defer func() {
		sync.state <- stateRequest{req: reqCleanup}
	}()

	dbg, err := debugger.NewDebugger(con, term)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, cartload, *duration)
}

func digests(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	if *frames <= 0 {
		return fmt.Errorf("number of frames must be positive")
	}

	con, err := newConsole(cartload, environment.Label("digest"), true)
	if err != nil {
		return err
	}

	vdig := digest.NewVideo()
	adig := digest.NewAudio()

	err = con.RunForFrameCount(*frames, func(_ int) (bool, error) {
		vdig.AddFrame(con.Frame())
		adig.AddSamples(con.Samples())
		return true, nil
	})
	if err != nil {
		return err
	}
	adig.Flush()

	fmt.Fprintf(md.Output, "video: %s\naudio: %s\n", vdig.Hash(), adig.Hash())
	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	graph := md.AddString("memviz", "", "write a graph of the console's initial state to file (dot format)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	con, err := newConsole(cartload, environment.Label("info"), true)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s\n", con.Cart.Header)
	fmt.Fprintf(md.Output, "region: %s\n", con.Region)
	fmt.Fprintf(md.Output, "sha1: %s\n", con.Cart.Hash)

	m, err := memorymap.Build(con.MemoryMap())
	if err != nil {
		return err
	}
	for _, bank := range []uint8{0x00, 0x40, 0x7e, 0xc0} {
		fmt.Fprintf(md.Output, "\nbank %02x\n%s", bank, m.Summary(bank))
	}

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		memviz.Map(f, &con.Cart.Header, con.DMA.Snapshot(), &con.Timing)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
