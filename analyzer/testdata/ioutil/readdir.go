package ioutil

import "io/ioutil" // want "io/ioutil is deprecated"

func names(dir string) []string {
	infos, _ := ioutil.ReadDir(dir)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	return names
}
