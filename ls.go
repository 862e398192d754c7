package main

// list prints the library. Fields, when given, restrict both what is shown
// and what the filter looks at.
func (a *app) list(filter string, useRegex bool, fields string, mode *modeFlag) error {
	cfg, err := loadConfig(a.store)
	if err != nil {
		return err
	}

	lib, err := loadLibrary(a.store)
	if err != nil {
		return err
	}

	if fields != "" {
		lib = lib.Project(parseFields(fields))
	}

	if filter != "" {
		re, err := compileFilter(filter, useRegex)
		if err != nil {
			return err
		}
		lib = lib.Filter(re)
	}

	p := &printer{out: a.stdout, cfg: cfg, painter: a.painter}
	return p.print(lib, mode.Or(cfg.OutputMode))
}

func (a *app) listTags() error {
	lib, err := loadLibrary(a.store)
	if err != nil {
		return err
	}
	return printTags(a.stdout, countTags(lib))
}
