package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/samuelfneumann/nninit/activation"
	"github.com/samuelfneumann/nninit/config"
	"github.com/samuelfneumann/nninit/initwfn"
	"github.com/samuelfneumann/nninit/shared"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	G "gorgonia.org/gorgonia"
)

func main() {
	configFile := flag.String("config", "", "JSON configuration file")
	layerSizes := flag.String("layers", "4,16,16,3", "comma separated layer sizes")
	activations := flag.String("activations", "relu,tanh,softmax",
		"comma separated activation of each layer")
	flag.Parse()

	// Configure initialization from the file if given, otherwise
	// from the environment
	var c config.Config
	var err error
	if *configFile != "" {
		c, err = config.Load(*configFile)
	} else {
		c, err = config.FromEnv()
	}
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}
	if err := initwfn.Configure(c); err != nil {
		log.Fatalf("could not apply configuration: %v", err)
	}

	sizes, err := parseSizes(*layerSizes)
	if err != nil {
		log.Fatal(err)
	}
	acts := strings.Split(*activations, ",")
	if len(acts) != len(sizes)-1 {
		log.Fatalf("need %d activations, got %d", len(sizes)-1, len(acts))
	}

	// Create the input
	g := G.NewGraph()
	input, err := shared.NewParam(g, "input", []int{1, sizes[0]}, nil,
		initwfn.Normal)
	if err != nil {
		log.Fatal(err)
	}

	// Create each layer
	x := input
	for i := 1; i < len(sizes); i++ {
		w, err := shared.NewParam(g, fmt.Sprintf("W%d", i),
			[]int{sizes[i-1], sizes[i]}, nil, initwfn.Unset)
		if err != nil {
			log.Fatal(err)
		}
		summarize(w)

		act, err := activation.ByName(acts[i-1])
		if err != nil {
			log.Fatal(err)
		}

		x = G.Must(G.Mul(x, w))
		if x, err = act.Fwd(x); err != nil {
			log.Fatalf("could not add activation %v: %v", act, err)
		}
	}

	vm := G.NewTapeMachine(g)
	defer vm.Close()
	if err := vm.RunAll(); err != nil {
		log.Fatalf("could not run forward pass: %v", err)
	}
	fmt.Printf("output: %v\n", x.Value())
}

// parseSizes parses a comma separated list of layer sizes
func parseSizes(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) < 2 {
		return nil, fmt.Errorf("parseSizes: need at least two layer sizes")
	}

	sizes := make([]int, len(fields))
	for i, field := range fields {
		size, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("parseSizes: %v", err)
		}
		sizes[i] = size
	}
	return sizes, nil
}

// summarize prints the mean, variance and range of a parameter
func summarize(n *G.Node) {
	var vals []float64
	switch data := n.Value().Data().(type) {
	case []float64:
		vals = data
	case []float32:
		vals = make([]float64, len(data))
		for i := range data {
			vals[i] = float64(data[i])
		}
	default:
		return
	}

	mean, variance := stat.MeanVariance(vals, nil)
	fmt.Printf("%v %v (%v): mean %.4f, var %.4f, range [%.4f, %.4f]\n",
		n.Name(), n.Shape(), n.Dtype(), mean, variance, floats.Min(vals),
		floats.Max(vals))
}
