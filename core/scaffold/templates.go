package scaffold

const setupPyTemplate = `import os
from setuptools import setup, find_packages

setup(
    name="{{ .Package.Name }}",
    version="{{ .Package.Version }}",
    description="{{ .Package.Description }}",
    long_description=open("README.md").read() if os.path.exists("README.md") else "",
    long_description_content_type="text/markdown",
    author="{{ .Package.Author }}",
    author_email="{{ .Package.Email }}",
    url="{{ .Package.URL }}",
    packages=find_packages(),
    install_requires=[
        "protobuf>=4.21.0",
    ],
    python_requires=">=3.8",
    include_package_data=True,
    package_data={
        "": ["*.proto", "*.py", "*.pyi"],
    },
)
`

const initPyTemplate = `"""{{ .Package.Description }}"""

__version__ = "{{ .Package.Version }}"
`
