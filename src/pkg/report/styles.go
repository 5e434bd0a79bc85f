package report

// reportCSS is the complete stylesheet embedded in every standalone
// report. Pages are sized for A4 portrait printing.
const reportCSS = `
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: #f0f2f5; margin: 0;
        }

        .page {
            width: 210mm; min-height: 297mm; padding: 10mm 12mm 8mm 12mm;
            margin: 10px auto; background: white;
            box-shadow: 0 2px 12px rgba(0,0,0,0.1);
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            font-size: 12px; color: #333;
            page-break-after: always; overflow: hidden;
        }
        .page:last-child { page-break-after: auto; }

        @media print {
            body { background: white; }
            .page { box-shadow: none; margin: 0; }
            @page { size: A4 portrait; margin: 5mm; }
        }

        /* Header */
        .header {
            display: flex; justify-content: space-between; align-items: flex-start;
            margin-bottom: 8px; padding-bottom: 8px; border-bottom: 2px solid #2c5aa0;
        }
        .header-titles h1 { font-size: 16px; color: #1e4077; margin-bottom: 2px; }
        .header-titles h2 { font-size: 12px; color: #555; font-weight: 400; }
        .header-obra { text-align: right; flex-shrink: 0; }
        .header-obra-label { font-size: 12px; color: #1e4077; font-weight: 400; }
        .header-obra-value { font-size: 18px; font-weight: 700; color: #1e4077; }
        .header-fecha { font-size: 11px; color: #1e4077; margin-top: 3px; font-weight: 700; }

        /* Section titles */
        .section-title {
            background: linear-gradient(90deg, #2c5aa0 0%, #3d6db5 100%);
            color: white; padding: 6px 12px; font-size: 12px; font-weight: 600;
            display: flex; align-items: center; border-radius: 4px 4px 0 0;
            margin-top: 10px;
        }
        .section-title .numero {
            background: white; color: #2c5aa0;
            width: 22px; height: 22px; border-radius: 50%;
            display: flex; align-items: center; justify-content: center;
            margin-right: 10px; font-size: 12px; font-weight: 700;
            flex-shrink: 0;
        }

        /* Tables */
        table {
            width: 100%; border-collapse: collapse; background: white;
            border: 1px solid #ddd; border-top: none;
        }
        th {
            background: #f8f9fa; color: #1e4077; padding: 7px 10px;
            font-weight: 700; font-size: 12px; border-bottom: 2px solid #2c5aa0;
            text-align: left;
        }
        td {
            padding: 7px 10px; border-bottom: 1px solid #eee; font-size: 12px;
        }
        td.num, th.num {
            text-align: right; font-family: 'Consolas', 'Courier New', monospace;
        }
        .total-row { background: #e8f4fd !important; }
        .total-row td {
            font-weight: 700; color: #1e4077;
            border-top: 2px solid #2c5aa0; border-bottom: 2px solid #2c5aa0;
        }

        /* Two-column layout */
        .two-columns {
            display: grid; grid-template-columns: 1fr 1fr;
            gap: 12px; margin-bottom: 8px;
        }
        .two-columns .section-title { margin-top: 0; }

        /* Cards */
        .cards-container {
            display: grid; grid-template-columns: repeat(3, 1fr);
            gap: 12px; margin: 10px 0;
        }
        .card {
            background: linear-gradient(180deg, #ffffff 0%, #f8f9fa 100%);
            border: 1px solid #e0e0e0; border-radius: 8px;
            padding: 12px 10px; text-align: center;
            box-shadow: 0 2px 4px rgba(0,0,0,0.05);
        }
        .card-title { font-size: 11px; color: #666; font-weight: 600; margin-bottom: 6px; text-transform: uppercase; }
        .card-value { font-size: 26px; font-weight: 700; }
        .card-value.positivo { color: #28a745; }
        .card-value.negativo { color: #dc3545; }
        .card-monto {
            font-size: 13px; font-weight: 600; margin-top: 6px;
            padding: 4px 10px; border-radius: 12px; display: inline-block;
        }
        .card-monto.ganancia { background: #d4edda; color: #155724; }
        .card-monto.perdida { background: #f8d7da; color: #721c24; }

        /* Estado boxes */
        .estado-box {
            display: inline-block; padding: 4px 12px; border-radius: 10px;
            font-weight: 700; font-size: 10px;
        }
        .estado-ganancia { background: #d4edda; color: #155724; }
        .estado-perdida { background: #f8d7da; color: #721c24; }
        .valor-positivo { color: #28a745; font-weight: 700; }
        .valor-negativo { color: #dc3545; font-weight: 700; }

        /* Tabla comparativa */
        .tabla-comparativa th, .tabla-comparativa td { text-align: right; font-size: 12px; }
        .tabla-comparativa th:first-child, .tabla-comparativa td:first-child { text-align: left; }
        .tabla-comparativa th:last-child, .tabla-comparativa td:last-child { text-align: center; }

        /* PAGE 2: CURVA S */
        .summary-cards-curva {
            display: grid; grid-template-columns: repeat(3, 1fr);
            gap: 10px; margin: 8px 0;
        }
        .summary-card-curva {
            border-radius: 8px; padding: 10px 8px; text-align: center;
        }
        .summary-card-curva.prog { background: linear-gradient(135deg, #e8edf5, #d5dff0); border: 1px solid #b8c9e2; }
        .summary-card-curva.ejec { background: linear-gradient(135deg, #d4edda, #c3e6cb); border: 1px solid #a3d5b1; }
        .summary-card-curva.plan { background: linear-gradient(135deg, #fff3cd, #ffeaa7); border: 1px solid #e6d590; }
        .summary-card-curva .card-label { font-size: 10px; font-weight: 600; text-transform: uppercase; margin-bottom: 4px; }
        .summary-card-curva .card-pct { font-size: 22px; font-weight: 700; }
        .summary-card-curva .card-amt { font-size: 11px; font-weight: 600; margin-top: 2px; }

        /* Chart container */
        .chart-container {
            background: white; border: 1px solid #ddd;
            border-radius: 0 0 4px 4px; border-top: none;
            padding: 15px 10px 8px 10px;
        }

        /* Curva table */
        .table-curva th { font-size: 11px; padding: 7px 10px; }
        .table-curva td { font-size: 12px; padding: 7px 10px; }
        .table-curva td.num { font-size: 11px; }
        .mes-actual { background: #fff3cd !important; font-weight: 700; }
        .mes-proyeccion { background: #f0f4fa !important; font-style: italic; color: #666; }
        .mes-proyeccion .dash { color: #bbb; }

        /* Legend */
        .legend-container {
            display: flex; justify-content: center; gap: 24px; margin: 10px 0 0 0;
        }
        .legend-item {
            display: flex; align-items: center; gap: 6px;
            font-size: 11px; font-weight: 600;
        }
        .legend-swatch {
            width: 18px; height: 4px; border-radius: 2px;
        }
        .legend-square {
            width: 12px; height: 12px; border-radius: 2px;
        }

        /* Notes */
        .nota-mes-completo {
            text-align: center; font-size: 10px; font-style: italic;
            background: #f8f9fa; border: 1px solid #eee; border-radius: 4px;
            padding: 5px 12px; margin-top: 6px;
        }
        .nota-mes-completo.nota-tabla {
            font-size: 11.5px; padding: 7px 14px; border-color: #ddd;
        }
        .nota-mes-completo .nota-label { color: #2c5aa0; font-weight: 700; }
        .nota-mes-completo .nota-bold { font-weight: 700; color: #2c5aa0; }
        .nota-mes-completo .nota-mes { font-weight: 700; }
`
