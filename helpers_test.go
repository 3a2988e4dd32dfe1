package svg2path

import "math/rand/v2"

func randomCoord(r *rand.Rand, relative bool) float64 {
	if relative {
		return float64(r.IntN(2*Size+1) - Size)
	}
	return float64(r.IntN(Size + 1))
}

// RandomPathData returns n random integer segments within the target
// coordinate space, using every command in both cases.
func RandomPathData(r *rand.Rand, n int) PathData {
	p := PathData{}
	for i := 0; i < n; i++ {
		cmd := Commands[r.IntN(len(Commands))]
		if i == 0 {
			cmd = 'M'
		} else if r.IntN(2) == 0 {
			cmd += 'a' - 'A'
		}

		args := make([]float64, cmdArgs(cmd))
		for j := range args {
			switch {
			case isArcFlag(cmd, j):
				args[j] = float64(r.IntN(2))
			case !isCoord(cmd, j):
				args[j] = float64(r.IntN(721) - 360)
			default:
				args[j] = randomCoord(r, isRelative(cmd))
			}
		}

		implicit := 0 < i && p[i-1].Cmd == cmd && upper(cmd) != 'Z' && r.IntN(2) == 0
		p = append(p, Segment{Cmd: cmd, Implicit: implicit, Args: args})
	}
	return p
}
