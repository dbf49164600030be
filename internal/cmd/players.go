package cmd

import (
	"fmt"
	"io"

	"tictactoe/learner"
	"tictactoe/player"
	"tictactoe/searcher"

	"golang.org/x/exp/rand"
)

// Names of the players that can be picked on the command line.
var playerNames = []string{"random", "minmax", "rndminmax", "vf", "human"}

// factory builds players from command line names. Every player gets its own
// seed derived from the global one so runs are reproducible.
type factory struct {
	*settings
	next  uint64
	in    io.Reader
	out   io.Writer
	human *player.Human // every human shares its input scanner
}

func (s *settings) factory(in io.Reader, out io.Writer) *factory {
	return &factory{settings: s, next: s.seed, in: in, out: out}
}

func (f *factory) nextSeed() uint64 {
	f.next++
	return f.next
}

func (f *factory) learner() (*learner.Agent, error) {
	l := f.config.Learner
	return learner.New(
		learner.WithLearningRate(l.LearningRate),
		learner.WithExplorationRate(l.ExplorationRate),
		learner.WithDrawValue(l.DrawValue),
		learner.WithInitValue(l.InitValue),
		learner.WithSeed(f.nextSeed()),
	)
}

func (f *factory) searcher(randomTies bool) *searcher.Agent {
	options := []searcher.Option{searcher.WithSeed(f.nextSeed())}
	if randomTies {
		options = append(options, searcher.WithRandomTies())
	}
	if !f.config.Search.Cache {
		options = append(options, searcher.WithoutCache())
	}
	return searcher.New(options...)
}

func (f *factory) player(name string) (player.Player, error) {
	switch name {
	case "random":
		return player.NewRandom("RandomAgent", rand.New(rand.NewSource(f.nextSeed()))), nil
	case "minmax":
		return f.searcher(false), nil
	case "rndminmax":
		return f.searcher(true), nil
	case "vf":
		agent, err := f.learner()
		if err != nil {
			return nil, err
		}
		return agent, nil
	case "human":
		return f.humanPlayer(), nil
	default:
		return nil, fmt.Errorf("unknown player %q, expected one of %v", name, playerNames)
	}
}

func (f *factory) humanPlayer() *player.Human {
	if f.human == nil {
		f.human = player.NewHuman("Human", f.in, f.out)
		return f.human
	}
	return f.human.Seat("Human 2")
}
