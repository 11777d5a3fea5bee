package vis

// page takes the page title and the network JSON.
var page = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        * {
            margin: 0;
        }
        #mynetwork {
            width: 100vw;
            height: 100vh;
        }
    </style>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script type="text/javascript"
      src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
  </head>
  <body>
    <div id="mynetwork"></div>
    <script type="text/javascript">
const data = %s;

var container = document.getElementById("mynetwork");

var options = {
  physics: {
    enabled: false,
  },
  nodes: {
    shape: "dot",
    borderWidth: 2,
    fixed: true,
  },
  edges: {
    smooth: false,
  },
  interaction: {
    dragNodes: false,
    hover: true,
  },
};

var network = new vis.Network(container, {
  nodes: new vis.DataSet(data.nodes),
  edges: new vis.DataSet(data.edges),
}, options);
        </script>
  </body>
</html>`
