// meshtool is a small command-line front end over the mesh library: it
// prints topology information about a JSON mesh document and welds
// duplicate vertices.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paireks/meshmeshmesh-sub000/graph"
	"github.com/paireks/meshmeshmesh-sub000/mesh"
	"github.com/paireks/meshmeshmesh-sub000/topo"
	"github.com/paireks/meshmeshmesh-sub000/weld"
)

var settingsPath string

var rootCmd = &cobra.Command{
	Use:           "meshtool",
	Short:         "Inspect and consolidate JSON triangle meshes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var infoCmd = &cobra.Command{
	Use:   "info <mesh.json>",
	Short: "Print vertex, face and topology information for a mesh",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(settingsPath)
		if err != nil {
			return err
		}
		maxAngle, err := cmd.Flags().GetFloat64("max-angle")
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("max-angle") {
			maxAngle = settings.MaxAngle
		}

		m, err := mesh.ReadFile(args[0])
		if err != nil {
			return err
		}

		return runInfo(m, maxAngle)
	},
}

var weldCmd = &cobra.Command{
	Use:   "weld <in.json>",
	Short: "Merge duplicate vertices within tolerance and write the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(settingsPath)
		if err != nil {
			return err
		}
		tolerance, err := cmd.Flags().GetFloat64("tolerance")
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("tolerance") {
			tolerance = settings.Tolerance
		}
		out, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		m, err := mesh.ReadFile(args[0])
		if err != nil {
			return err
		}
		welded, err := weld.Weld(m, tolerance)
		if err != nil {
			return err
		}
		fmt.Printf("%d vertices -> %d vertices (%d faces)\n",
			m.NumberOfVertices(), welded.NumberOfVertices(), welded.NumberOfFaces())

		return welded.WriteFile(out)
	},
}

// runInfo prints the topology report. A positive maxAngle additionally
// clusters the faces by folding the dual graph at that dihedral angle.
func runInfo(m *mesh.Mesh, maxAngle float64) error {
	fmt.Printf("%d\t\t= vertices\n", m.NumberOfVertices())
	fmt.Printf("%d\t\t= faces\n", m.NumberOfFaces())
	fmt.Printf("%8.5f\t= area\n", m.Area())
	fmt.Printf("%d\t\t= non-manifold edges\n", len(m.NonManifoldEdges()))

	connected, err := m.IsConnected()
	if err != nil {
		return err
	}
	fmt.Printf("%t\t\t= connected\n", connected)

	naked, err := m.EdgesWithMissingNeighbour()
	if err != nil {
		return err
	}
	fmt.Printf("%d\t\t= naked edges\n", len(naked))

	if maxAngle <= 0 {
		return nil
	}

	neighbours, err := m.FaceNeighbours()
	if err != nil {
		return err
	}
	angles, err := topo.AnglesFromFaceNeighbours(neighbours, m.ToTriangles())
	if err != nil {
		return err
	}
	g, err := graph.FromFaceNeighboursWithMaxAngle(neighbours, angles, maxAngle)
	if err != nil {
		return err
	}
	fmt.Printf("%d\t\t= face clusters below %.5f rad\n",
		len(g.SplitDisconnectedComponents()), maxAngle)

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "YAML settings file with default tolerance and max angle")
	infoCmd.Flags().Float64("max-angle", 0, "cluster faces across edges folded less than this angle, in radians")
	weldCmd.Flags().Float64P("tolerance", "t", 0.001, "coordinate tolerance for merging vertices")
	weldCmd.Flags().StringP("output", "o", "welded.json", "output mesh file")
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(weldCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "meshtool:", err)
		os.Exit(1)
	}
}
