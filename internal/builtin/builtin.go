// Package builtin provides the configuration types that are always
// available to the schema generator.
package builtin

import (
	"github.com/takumiyoshikawa/rcschema/internal/jsonschema"
	"github.com/takumiyoshikawa/rcschema/internal/registry"
)

type ApplicationOptions struct {
	MainClass            string            `yaml:"mainClass" jsonschema:"description=Fully qualified name of the class with the main method."`
	Module               string            `yaml:"module,omitempty" jsonschema:"description=Module whose classpath is used to run the application."`
	ProgramParameters    string            `yaml:"programParameters,omitempty" jsonschema:"description=Arguments passed to the main method."`
	VMParameters         string            `yaml:"vmParameters,omitempty" jsonschema:"description=Options passed to the JVM."`
	WorkingDirectory     string            `yaml:"workingDirectory,omitempty" jsonschema:"description=Working directory of the process. Defaults to the project directory."`
	IncludeProvidedScope bool              `yaml:"includeProvidedScope,omitempty" jsonschema:"description=Add dependencies with provided scope to the classpath."`
	AlternativeJrePath   string            `yaml:"alternativeJrePath,omitempty" jsonschema:"description=JRE used instead of the module SDK."`
	ShortenClasspath     string            `yaml:"shortenClasspath,omitempty" jsonschema:"enum=NONE,enum=MANIFEST,enum=CLASSPATH_FILE,enum=ARGS_FILE,description=How a long classpath is shortened on the command line."`
	BeforeLaunch         []string          `yaml:"beforeLaunch,omitempty" jsonschema:"description=Tasks executed before the application is started."`
	Env                  map[string]string `yaml:"env,omitempty" jsonschema:"description=Environment variables passed to the process."`
	PassParentEnvs       bool              `yaml:"passParentEnvs,omitempty" jsonschema:"default=true,description=Whether the parent process environment is inherited."`
}

type AppletOptions struct {
	MainClass        string            `yaml:"mainClass" jsonschema:"description=Fully qualified name of the applet class."`
	HTMLFile         string            `yaml:"htmlFile,omitempty" jsonschema:"description=HTML page that embeds the applet. Used instead of mainClass when set."`
	Width            int               `yaml:"width,omitempty" jsonschema:"minimum=0,default=400,description=Applet width in pixels."`
	Height           int               `yaml:"height,omitempty" jsonschema:"minimum=0,default=300,description=Applet height in pixels."`
	PolicyFile       string            `yaml:"policyFile,omitempty" jsonschema:"description=Security policy file passed to the applet viewer."`
	VMParameters     string            `yaml:"vmParameters,omitempty" jsonschema:"description=Options passed to the JVM."`
	AppletParameters map[string]string `yaml:"appletParameters,omitempty" jsonschema:"description=Parameters passed to the applet."`
}

// Application runs a class with a main method. Its schema property is
// jvmApplication so it does not clash with other application types.
func Application() registry.ConfigurationType {
	return registry.ConfigurationType{
		ID:           "Application",
		PropertyName: "jvmApplication",
		DisplayName:  "Application",
		Description:  "Java application",
		Factories: []registry.Factory{
			{ID: "Application", Name: "Application", Options: jsonschema.OptionsFactory[ApplicationOptions]()},
		},
	}
}

func Applet() registry.ConfigurationType {
	return registry.ConfigurationType{
		ID:          "Applet",
		DisplayName: "Applet",
		Description: "Java applet",
		Factories: []registry.Factory{
			{ID: "Applet", Name: "Applet", Options: jsonschema.OptionsFactory[AppletOptions]()},
		},
	}
}

// Types returns the built-in configuration types in registration order.
func Types() []registry.ConfigurationType {
	return []registry.ConfigurationType{Application(), Applet()}
}
