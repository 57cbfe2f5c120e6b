package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mogaika/material_fixer/config"
	"github.com/mogaika/material_fixer/gltfexport"
	"github.com/mogaika/material_fixer/material"
	"github.com/mogaika/material_fixer/migrate"
	"github.com/mogaika/material_fixer/scene"
	"github.com/mogaika/material_fixer/shading"
	"github.com/mogaika/material_fixer/status"
	"github.com/mogaika/material_fixer/utils"
	"github.com/mogaika/material_fixer/web"
	"github.com/mogaika/material_fixer/worldgen"
)

func main() {
	var addr, cfgpath, scenepath, outpath, gltfpath string
	var demo int
	var seed int64
	var dump, printconfig bool
	flag.StringVar(&addr, "i", "", "Address of server, fix on demand instead of batch run")
	flag.StringVar(&cfgpath, "config", "", "Path to yaml config, defaults are used when empty")
	flag.StringVar(&scenepath, "scene", "", "Path to yaml scene")
	flag.IntVar(&demo, "demo", 0, "Generate demo world with this many buildings instead of -scene")
	flag.Int64Var(&seed, "seed", 1, "Demo world seed")
	flag.StringVar(&outpath, "out", "", "Write fixed scene to this yaml file")
	flag.StringVar(&gltfpath, "gltf", "", "Export fixed materials and nodes to this gltf file")
	flag.BoolVar(&dump, "dump", false, "Dump migration cache after fixing")
	flag.BoolVar(&printconfig, "printconfig", false, "Print effective config and exit")
	flag.Parse()

	if cfgpath != "" {
		cfg, err := config.Load(cfgpath)
		if err != nil {
			log.Fatal(err)
		}
		config.Set(cfg)
	}
	cfg := config.Get()

	if printconfig {
		data, err := cfg.Marshal()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
		return
	}

	rt := shading.NewRegistry(cfg.SupportedModels...)

	var root *scene.Node
	if scenepath != "" {
		var err error
		if root, err = scene.Load(scenepath, rt); err != nil {
			log.Fatal(err)
		}
	} else if demo > 0 {
		root = worldgen.Generate(seed, demo, rt)
	} else {
		flag.PrintDefaults()
		return
	}

	engine := migrate.New(cfg, rt, migrate.WithReporter(status.Reporter{}))

	if addr != "" {
		if err := web.NewServer(root, engine).Start(addr); err != nil {
			log.Fatal(err)
		}
		return
	}

	if res, ran := engine.FixIfNeeded(root); !ran {
		log.Printf("Nothing to fix")
	} else {
		log.Printf("Fixed: %v", res)
	}

	if dump {
		entries := engine.Cache().Entries()
		descs := make(map[string]material.Description, len(entries))
		for _, e := range entries {
			descs[fmt.Sprintf("%s (%v)", e.Source.Name(), e.Source.ID())] = e.Target.Describe()
		}
		utils.Dump(descs)
	}

	if outpath != "" {
		if err := scene.Save(outpath, root); err != nil {
			log.Fatal(err)
		}
	}

	if gltfpath != "" {
		e := gltfexport.NewExporter()
		e.AddScene(root)
		if err := e.Save(gltfpath); err != nil {
			log.Fatal(err)
		}
	}
}
