package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gsspdev/fmsynth"
	"github.com/gsspdev/fmsynth/oto"
	"github.com/gsspdev/fmsynth/version"
)

var (
	sampleRate  int
	catalogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fmsynth",
	Short: "Play melodies with a two-operator FM synthesizer",
	Long: `fmsynth renders melodies with FM synthesis and plays them on the
default audio device. Run without arguments for an interactive shell, or use
the subcommands directly:

  fmsynth list
  fmsynth play bell "twinkle twinkle"
  fmsynth demo
  fmsynth render 3 2 -w`,
	Version:      version.VersionOrHash,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		player, err := newPlayer()
		if err != nil {
			return err
		}
		return runShell(player)
	},
}

var listCmd = &cobra.Command{
	Use:       "list [presets|melodies]",
	Short:     "List the available presets and melodies",
	ValidArgs: []string{"presets", "melodies"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		which := ""
		if len(args) > 0 {
			which = args[0]
		}
		if which == "" || which == "presets" {
			printNumbered("Presets:", catalog.PresetNames())
		}
		if which == "" || which == "melodies" {
			printNumbered("Melodies:", catalog.MelodyNames())
		}
		return nil
	},
}

var playCmd = &cobra.Command{
	Use:   "play <preset> <melody>",
	Short: "Play one melody with one preset",
	Long: `Play one melody with one preset. Both can be given as the 1-based
number from 'fmsynth list' or as a case-insensitive name.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		player, err := newPlayer()
		if err != nil {
			return err
		}
		return playSelectors(player, args[0], args[1])
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play the chromatic scale with every preset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		player, err := newPlayer()
		if err != nil {
			return err
		}
		return runDemo(player)
	},
}

// runDemo announces each preset as it plays the chromatic scale; SIGINT
// stops the remaining presets.
func runDemo(player *fmsynth.Player) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	names := player.ListPresets()
	for i, name := range names {
		if ctx.Err() != nil {
			break
		}
		fmt.Printf("[%d/%d] %s\n", i+1, len(names), name)
		if err := player.PlayMelody(ctx, i, demoMelodyIndex(player)); err != nil {
			if ctx.Err() != nil {
				break
			}
			return err
		}
	}
	return nil
}

var (
	rawOut bool
	wavOut bool
	pcm16  bool
	outDir string
)

var renderCmd = &cobra.Command{
	Use:   "render <preset> <melody>",
	Short: "Render one melody to a .wav or .raw file instead of playing it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		presetIndex, err := catalog.FindPreset(args[0])
		if err != nil {
			return err
		}
		melodyIndex, err := catalog.FindMelody(args[1])
		if err != nil {
			return err
		}
		preset, _ := catalog.Preset(presetIndex)
		melody, _ := catalog.Melody(melodyIndex)
		buffer, err := fmsynth.RenderMelody(melody, preset, sampleRate)
		if err != nil {
			return err
		}
		stats := fmsynth.Analyze(buffer)
		fmt.Printf("rendered %v samples, peak %v, rms %v\n", len(buffer), stats.Peak, stats.RMS)
		if !rawOut && !wavOut {
			wavOut = true
		}
		name := strings.ReplaceAll(strings.ToLower(melody.Name), " ", "_")
		if wavOut {
			wav, err := fmsynth.Wav(buffer, sampleRate, pcm16)
			if err != nil {
				return err
			}
			if err := output(name+".wav", wav); err != nil {
				return err
			}
		}
		if rawOut {
			raw, err := fmsynth.Raw(buffer, pcm16)
			if err != nil {
				return err
			}
			if err := output(name+".raw", raw); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&sampleRate, "rate", fmsynth.SampleRate, "Sample rate in Hz.")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Load presets and melodies from a yaml file instead of the built-in catalog.")
	renderCmd.Flags().BoolVarP(&wavOut, "wav", "w", false, "Output the rendered melody as a .wav file (default when no output is selected).")
	renderCmd.Flags().BoolVarP(&rawOut, "raw", "r", false, "Output the rendered melody as a headerless .raw file.")
	renderCmd.Flags().BoolVarP(&pcm16, "pcm", "c", false, "Convert audio to 16-bit signed PCM when outputting.")
	renderCmd.Flags().StringVarP(&outDir, "output", "o", "", "Directory where to place output files. Created if needed.")
	rootCmd.AddCommand(listCmd, playCmd, demoCmd, renderCmd)
}

func loadCatalog() (*fmsynth.Catalog, error) {
	if catalogPath == "" {
		return fmsynth.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog %v: %v", catalogPath, err)
	}
	catalog, err := fmsynth.ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("could not load catalog %v: %v", catalogPath, err)
	}
	return catalog, nil
}

func newPlayer() (*fmsynth.Player, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	audio, err := oto.NewContext(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("could not acquire audio output: %v", err)
	}
	return fmsynth.NewPlayer(catalog, sampleRate, audio), nil
}

// playSelectors resolves the two user-facing selectors and plays, with a
// SIGINT cancelling mid-melody instead of killing the process.
func playSelectors(player *fmsynth.Player, presetSel, melodySel string) error {
	catalog := player.Catalog()
	presetIndex, err := catalog.FindPreset(presetSel)
	if err != nil {
		return err
	}
	melodyIndex, err := catalog.FindMelody(melodySel)
	if err != nil {
		return err
	}
	preset, _ := catalog.Preset(presetIndex)
	melody, _ := catalog.Melody(melodyIndex)
	fmt.Printf("playing %q with preset %q\n", melody.Name, preset.Name)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := player.PlayMelody(ctx, presetIndex, melodyIndex); err != nil {
		if ctx.Err() != nil {
			fmt.Println("stopped")
			return nil
		}
		return err
	}
	return nil
}

func demoMelodyIndex(player *fmsynth.Player) int {
	if i, err := player.Catalog().FindMelody("Chromatic Scale"); err == nil {
		return i
	}
	return 0
}

func printNumbered(header string, names []string) {
	fmt.Println(header)
	for i, name := range names {
		fmt.Printf("  %2d. %s\n", i+1, name)
	}
}

func output(name string, contents []byte) error {
	dir := outDir
	if dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output directory %v: %v", dir, err)
		}
	}
	f := filepath.Join(dir, name)
	if err := os.WriteFile(f, contents, 0644); err != nil {
		return fmt.Errorf("could not write file %v: %v", f, err)
	}
	fmt.Printf("wrote %v\n", f)
	return nil
}
