package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PlanterCut/internal/diagram"
	"github.com/piwi3910/PlanterCut/internal/engine"
	"github.com/piwi3910/PlanterCut/internal/export"
	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/share"
)

var (
	jsonFlag    bool
	compareFlag bool
	outputFlag  string
	qrFlag      string
	qrSizeFlag  int

	pdfFlag  string
	dxfFlag  string
	xlsxFlag string
	svgFlag  string

	planCmd = &cobra.Command{
		Use:   "plan",
		Short: "Print the cut list for a planter configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := computeLayout()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonFlag {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(layout)
			}
			fmt.Fprint(out, export.RenderText(layout))
			if compareFlag && layout.Computed() {
				printComparison(out, layout.PlanterConfig)
			}
			return nil
		},
	}

	diagramCmd = &cobra.Command{
		Use:   "diagram",
		Short: "Write the assembly drawing as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, scene, err := computeScene()
			if err != nil {
				return err
			}
			if outputFlag == "" || outputFlag == "-" {
				return export.WriteSVG(cmd.OutOrStdout(), scene)
			}
			return writeSVGFile(outputFlag, scene)
		},
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the cut list as PDF, DXF, Excel or SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pdfFlag == "" && dxfFlag == "" && xlsxFlag == "" && svgFlag == "" {
				return errors.New("nothing to do: pass at least one of --pdf, --dxf, --xlsx, --svg")
			}
			cfg, err := loadPlanterConfig()
			if err != nil {
				return err
			}
			layout, scene, err := composeConfig(cfg)
			if err != nil {
				return err
			}

			if pdfFlag != "" {
				link, err := share.Link(env.ShareBaseURL, cfg)
				if err != nil {
					return err
				}
				if err := export.ExportPDF(pdfFlag, layout, scene, link); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", pdfFlag)
			}
			if dxfFlag != "" {
				if err := export.ExportDXF(dxfFlag, layout); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", dxfFlag)
			}
			if xlsxFlag != "" {
				if err := export.ExportXLSX(xlsxFlag, layout); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", xlsxFlag)
			}
			if svgFlag != "" {
				if err := writeSVGFile(svgFlag, scene); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", svgFlag)
			}
			return nil
		},
	}

	shareCmd = &cobra.Command{
		Use:   "share",
		Short: "Print a share link for a planter configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadPlanterConfig()
			if err != nil {
				return err
			}
			link, err := share.Link(env.ShareBaseURL, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			if qrFlag != "" {
				if err := share.WriteQRCode(link, qrSizeFlag, qrFlag); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", qrFlag)
			}
			return nil
		},
	}
)

func init() {
	planCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the layout as JSON")
	planCmd.Flags().BoolVar(&compareFlag, "compare", false, "Also compare the box on other stock lengths and kerfs")

	diagramCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "SVG output file (default stdout)")

	exportCmd.Flags().StringVar(&pdfFlag, "pdf", "", "Write a printable PDF cut list")
	exportCmd.Flags().StringVar(&dxfFlag, "dxf", "", "Write a DXF plank drawing")
	exportCmd.Flags().StringVar(&xlsxFlag, "xlsx", "", "Write an Excel workbook")
	exportCmd.Flags().StringVar(&svgFlag, "svg", "", "Write the assembly drawing as SVG")

	shareCmd.Flags().StringVar(&qrFlag, "qr", "", "Also write the link as a PNG QR code")
	shareCmd.Flags().IntVar(&qrSizeFlag, "qr-size", share.DefaultQRSize, "QR code size in pixels")
}

func computeLayout() (model.Layout, error) {
	cfg, err := loadPlanterConfig()
	if err != nil {
		return model.Layout{}, err
	}
	return engine.ComputeLayout(cfg)
}

func computeScene() (model.Layout, diagram.Scene, error) {
	cfg, err := loadPlanterConfig()
	if err != nil {
		return model.Layout{}, diagram.Scene{}, err
	}
	return composeConfig(cfg)
}

// composeConfig lays out cfg and draws it. An incomplete configuration is
// an error here since there is nothing to draw or export.
func composeConfig(cfg model.PlanterConfig) (model.Layout, diagram.Scene, error) {
	layout, err := engine.ComputeLayout(cfg)
	if err != nil {
		return layout, diagram.Scene{}, err
	}
	scene, err := diagram.Compose(layout)
	if err != nil {
		return layout, scene, fmt.Errorf("configuration incomplete: %w", err)
	}
	return layout, scene, nil
}

func writeSVGFile(path string, scene diagram.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.WriteSVG(f, scene); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printComparison(w io.Writer, cfg model.PlanterConfig) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stock comparison:")
	for _, r := range engine.CompareScenarios(engine.BuildDefaultScenarios(cfg.StockConfig), cfg) {
		if r.Err != nil {
			fmt.Fprintf(w, "  %-24s %v\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "  %-24s %3d planks  %6.1f%% used  offcuts %s\n",
			r.Scenario.Name, r.PlanksUsed, r.Efficiency, model.FormatInches(r.OffcutLength))
	}
}
