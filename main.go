package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/catswipe/internal/catapi"
	"github.com/ytget/catswipe/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.catswipe"
	AppName = "Cat Swipe"

	WindowWidth  = 480
	WindowHeight = 720
)

var (
	// Flags
	queueSize int
	threshold float32
	verbose   bool

	logger *zap.Logger
)

// rootCmd launches the swipe window
var rootCmd = &cobra.Command{
	Use:     "catswipe",
	Short:   "Swipe through random cats and keep the ones you like",
	Version: version,
	Long: `catswipe shows a deck of random cat photos from cataas.com.

Drag a card right to like it or left to pass. Once every cat has been
judged, the liked ones are shown in a gallery.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().IntVarP(&queueSize, "cats", "n", 0, "Number of cats per session (default: saved setting)")
	rootCmd.Flags().Float32VarP(&threshold, "threshold", "t", 0, "Swipe distance in pixels that commits a decision (default: saved setting)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run opens the window and blocks until it is closed
func run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	source := catapi.NewClient(nil, catapi.Endpoint, logger.Named("catapi"))

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, source, logger.Named("ui"), ui.Options{
		QueueSize:      queueSize,
		SwipeThreshold: threshold,
	})
	root.Start(ctx)

	// Show and run
	myWindow.ShowAndRun()
	root.Stop()
	return nil
}
